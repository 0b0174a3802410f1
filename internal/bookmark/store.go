// Package bookmark keeps a visitor's saved articles and reconciles them with
// whatever article collection a page resolved.
package bookmark

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/brainfeed/internal/domain"
	"github.com/DjordjeVuckovic/brainfeed/internal/metrics"
)

type Store struct {
	mu        sync.Mutex
	storage   Storage
	bookmarks []domain.Bookmark
	now       func() time.Time
}

func NewStore(s Storage) *Store {
	return &Store{
		storage:   s,
		bookmarks: []domain.Bookmark{},
		now:       time.Now,
	}
}

// Load replaces the in-memory list with the persisted one. The lock is held
// across the read so a reload never overwrites a concurrent write.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks, err := s.storage.Load(ctx)
	metrics.ObserveBookmark("load", err)
	if err != nil {
		return err
	}
	s.bookmarks = bookmarks
	return nil
}

// Add saves article. Adding an id that is already saved changes nothing.
func (s *Store) Add(ctx context.Context, article domain.Article) (domain.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(article.ID); i >= 0 {
		return s.bookmarks[i], nil
	}

	b := domain.Bookmark{
		ID:      article.ID,
		Slug:    article.Slug,
		Title:   article.Title,
		SavedAt: s.now().UTC(),
	}
	next := append(slices.Clip(s.bookmarks), b)
	if err := s.save(ctx, "add", next); err != nil {
		return domain.Bookmark{}, err
	}
	s.bookmarks = next
	slog.Debug("Bookmark added", "id", b.ID, "slug", b.Slug)
	return b, nil
}

// Remove deletes id. Removing an id that is not saved is a no-op and does
// not write.
func (s *Store) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.bookmarks), i, i+1)
	if err := s.save(ctx, "remove", next); err != nil {
		return false, err
	}
	s.bookmarks = next
	return true, nil
}

// Clear writes an empty list unconditionally.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := []domain.Bookmark{}
	if err := s.save(ctx, "clear", next); err != nil {
		return err
	}
	s.bookmarks = next
	return nil
}

// List returns the bookmarks in the order they were added.
func (s *Store) List() []domain.Bookmark {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.bookmarks)
}

func (s *Store) Has(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index(id) >= 0
}

// Join returns the bookmarked articles present in articles, in bookmark
// order. Bookmarks whose article is missing are skipped, not deleted.
func (s *Store) Join(articles domain.Articles) domain.Articles {
	byID := make(map[int64]domain.Article, len(articles))
	for _, a := range articles {
		byID[a.ID] = a
	}

	out := domain.Articles{}
	for _, b := range s.List() {
		if a, ok := byID[b.ID]; ok {
			out = append(out, a)
		}
	}
	return out
}

func (s *Store) index(id int64) int {
	return slices.IndexFunc(s.bookmarks, func(b domain.Bookmark) bool { return b.ID == id })
}

func (s *Store) save(ctx context.Context, op string, next []domain.Bookmark) error {
	err := s.storage.Save(ctx, next)
	metrics.ObserveBookmark(op, err)
	if err != nil {
		slog.Error("Failed to persist bookmarks", "op", op, "error", err)
	}
	return err
}
