package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage/file"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage/pg"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage/redis"
)

// NewRecorder creates the storage.Recorder selected by cfg.
func NewRecorder(ctx context.Context, cfg *StorageConfig) (storage.Recorder, error) {
	switch cfg.Type {
	case storage.InMem:
		return in_mem.NewRecorder(), nil

	case storage.File:
		return file.NewRecorder(cfg.FileDir)

	case storage.Redis:
		return redis.NewRecorderWithURL(ctx, cfg.RedisURL)

	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		r, err := pg.NewRecorder(pool.GetConn())
		if err != nil {
			pool.Close()
			return nil, err
		}
		if err := r.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return r, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
