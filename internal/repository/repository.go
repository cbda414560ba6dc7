package repository

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("blob not found")

type PutBlobInput struct {
	Key  string
	Body []byte
}

// BlobRepository stores whole JSON documents by key. There is no partial
// update: callers read a document, change it and write all of it back.
type BlobRepository interface {
	GetBlob(ctx context.Context, key string) (*Blob, error)
	PutBlob(ctx context.Context, input PutBlobInput) error
}
