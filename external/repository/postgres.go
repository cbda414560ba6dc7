package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/foxseedlab/pitwall/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is the subset of *pgxpool.Pool the repository needs.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresRepository struct {
	db querier
}

func NewPostgresRepository(db querier) repository.BlobRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetBlob(ctx context.Context, key string) (*repository.Blob, error) {
	row := r.db.QueryRow(ctx,
		`SELECT key, body, updated_at FROM blobs WHERE key = $1`,
		key)
	var b repository.Blob
	if err := row.Scan(&b.Key, &b.Body, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: blob %q", repository.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to get blob %q: %w", key, err)
	}
	return &b, nil
}

func (r *PostgresRepository) PutBlob(ctx context.Context, input repository.PutBlobInput) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO blobs (key, body, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`,
		input.Key, input.Body)
	if err != nil {
		return fmt.Errorf("failed to put blob %q: %w", input.Key, err)
	}
	return nil
}
