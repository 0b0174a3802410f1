package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
)

const keyPrefix = "brainfeed:"

type Recorder struct {
	client *redis.Client
}

func NewRecorder(client *redis.Client) *Recorder {
	return &Recorder{client: client}
}

// NewRecorderWithURL connects using a redis:// URL and verifies the
// connection with a ping.
func NewRecorderWithURL(ctx context.Context, rawURL string) (*Recorder, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	r := NewRecorder(redis.NewClient(opts))
	if err := r.Ping(ctx); err != nil {
		_ = r.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return r, nil
}

func (r *Recorder) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, nil
}

func (r *Recorder) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *Recorder) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Recorder) Close() error {
	return r.client.Close()
}
