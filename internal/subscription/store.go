package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/foxseedlab/pitwall/internal/repository"
)

// BlobKey is the document the whole subscription map lives in.
const BlobKey = "guild_channel.json"

type Store interface {
	Load(ctx context.Context) (State, error)
	Save(ctx context.Context, state State) error
}

type BlobStore struct {
	repo repository.BlobRepository
	key  string
}

func NewBlobStore(repo repository.BlobRepository) *BlobStore {
	return &BlobStore{repo: repo, key: BlobKey}
}

func (s *BlobStore) Load(ctx context.Context) (State, error) {
	blob, err := s.repo.GetBlob(ctx, s.key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return State{}, nil
		}
		return nil, fmt.Errorf("loading subscriptions: %w", err)
	}
	state := State{}
	if len(blob.Body) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(blob.Body, &state); err != nil {
		return nil, fmt.Errorf("decoding subscriptions: %w", err)
	}
	return state, nil
}

func (s *BlobStore) Save(ctx context.Context, state State) error {
	body, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding subscriptions: %w", err)
	}
	if err := s.repo.PutBlob(ctx, repository.PutBlobInput{Key: s.key, Body: body}); err != nil {
		return fmt.Errorf("saving subscriptions: %w", err)
	}
	return nil
}

type Contact struct {
	ChatID      string
	ChannelID   string
	ChannelKind ChannelKind
}

// Touch records a contact from a chat. The read, upsert and write are not
// atomic: two requests for the same chat racing here resolve as last writer
// wins. Making this a conditional write is the upgrade path if that ever matters.
func Touch(ctx context.Context, store Store, contact Contact, intent Intent) (Record, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return Record{}, err
	}
	prev, existed := state[contact.ChatID]
	next := Upsert(state, contact.ChatID, contact.ChannelID, contact.ChannelKind, intent)
	rec := next[contact.ChatID]
	if existed && prev == rec {
		slog.Debug("subscription unchanged; skipping write", "chat_id", contact.ChatID)
		return rec, nil
	}
	if err := store.Save(ctx, next); err != nil {
		return Record{}, err
	}
	slog.Info("subscription updated", "chat_id", contact.ChatID, "channel_id", rec.ChannelID, "channel_kind", rec.ChannelKind, "subscribed", rec.Subscribed)
	return rec, nil
}
