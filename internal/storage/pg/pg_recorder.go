package pg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
)

const (
	schemaSQL = `
        CREATE TABLE IF NOT EXISTS kv_records (
            key        TEXT PRIMARY KEY,
            value      BYTEA NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`
	getSQL = `SELECT value FROM kv_records WHERE key = $1`
	putSQL = `
        INSERT INTO kv_records (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
)

// Querier is the subset of *pgxpool.Pool the recorder needs.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type Recorder struct {
	db Querier
}

func NewRecorder(db Querier) (*Recorder, error) {
	if db == nil {
		return nil, fmt.Errorf("pool is required")
	}
	return &Recorder{db: db}, nil
}

// EnsureSchema creates the record table when migrations have not been run.
func (r *Recorder) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create kv_records: %w", err)
	}
	return nil
}

func (r *Recorder) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(ctx, getSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return value, nil
}

func (r *Recorder) Put(ctx context.Context, key string, value []byte) error {
	tag, err := r.db.Exec(ctx, putSQL, key, value)
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	slog.Debug("Record saved to postgres", "key", key, "rows", tag.RowsAffected())
	return nil
}

func (r *Recorder) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Recorder) Close() error {
	r.db.Close()
	return nil
}
