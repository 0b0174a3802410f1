package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"sync"

	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
)

// Recorder keeps one JSON file per key inside dir. Writes go to a temporary
// file that is renamed over the target, so a reader never sees half a record.
type Recorder struct {
	mu  sync.Mutex
	dir string
}

func NewRecorder(dir string) (*Recorder, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is not set")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &Recorder{dir: dir}, nil
}

func (r *Recorder) path(key string) string {
	return filepath.Join(r.dir, url.PathEscape(key)+".json")
}

func (r *Recorder) Get(_ context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(r.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read record %s: %w", key, err)
	}
	return b, nil
}

func (r *Recorder) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(r.dir, ".record-*")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write record %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close record %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), r.path(key)); err != nil {
		return fmt.Errorf("replace record %s: %w", key, err)
	}

	slog.Debug("Record saved to file", "key", key, "path", r.path(key))
	return nil
}

func (r *Recorder) Ping(context.Context) error {
	info, err := os.Stat(r.dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", r.dir)
	}
	return nil
}

func (r *Recorder) Close() error { return nil }
