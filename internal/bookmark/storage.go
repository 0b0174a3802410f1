package bookmark

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
)

const recordKey = "bookmarks"

// Storage persists the whole ordered bookmark list.
type Storage interface {
	Load(ctx context.Context) ([]domain.Bookmark, error)
	Save(ctx context.Context, bookmarks []domain.Bookmark) error
}

// RecordStorage keeps the list as one JSON record on a storage.Recorder.
type RecordStorage struct {
	recorder storage.Recorder
	key      string
}

// NewRecordStorage scopes the record to session. An empty session uses the
// shared "bookmarks" key.
func NewRecordStorage(r storage.Recorder, session string) *RecordStorage {
	key := recordKey
	if session != "" {
		key += "/" + session
	}
	return &RecordStorage{recorder: r, key: key}
}

func (s *RecordStorage) Key() string { return s.key }

func (s *RecordStorage) Load(ctx context.Context) ([]domain.Bookmark, error) {
	raw, err := s.recorder.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return []domain.Bookmark{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load bookmarks: %w", err)
	}

	var bookmarks []domain.Bookmark
	if err := json.Unmarshal(raw, &bookmarks); err != nil {
		return nil, fmt.Errorf("decode bookmarks %s: %w", s.key, err)
	}
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	return bookmarks, nil
}

func (s *RecordStorage) Save(ctx context.Context, bookmarks []domain.Bookmark) error {
	if bookmarks == nil {
		bookmarks = []domain.Bookmark{}
	}
	raw, err := json.Marshal(bookmarks)
	if err != nil {
		return fmt.Errorf("encode bookmarks: %w", err)
	}
	if err := s.recorder.Put(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save bookmarks: %w", err)
	}
	return nil
}
