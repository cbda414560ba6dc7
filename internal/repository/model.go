package repository

import "time"

type Blob struct {
	Key       string
	Body      []byte
	UpdatedAt time.Time
}
