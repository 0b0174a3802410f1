package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
)

type Recorder struct {
	storageLock sync.RWMutex
	storage     map[string][]byte
}

func NewRecorder() *Recorder {
	return &Recorder{
		storage: make(map[string][]byte),
	}
}

func (r *Recorder) Get(_ context.Context, key string) ([]byte, error) {
	r.storageLock.RLock()
	defer r.storageLock.RUnlock()

	v, ok := r.storage[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (r *Recorder) Put(_ context.Context, key string, value []byte) error {
	r.storageLock.Lock()
	defer r.storageLock.Unlock()

	r.storage[key] = append([]byte(nil), value...)
	slog.Debug("Record saved to in-memory storage", "key", key, "bytes", len(value))
	return nil
}

func (r *Recorder) Ping(context.Context) error { return nil }

func (r *Recorder) Close() error { return nil }
