package bookmark

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/DjordjeVuckovic/brainfeed/internal/storage"
)

const DefaultSessionCacheSize = 1024

// Sessions hands out one Store per visitor session. Requests of the same
// session share the store, whose reloads and writes take the same lock.
type Sessions struct {
	mu       sync.Mutex
	recorder storage.Recorder
	stores   *lru.Cache[string, *Store]
}

func NewSessions(r storage.Recorder, size int) (*Sessions, error) {
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	stores, err := lru.New[string, *Store](size)
	if err != nil {
		return nil, err
	}
	return &Sessions{recorder: r, stores: stores}, nil
}

// For returns the store of session, reloaded from storage so that writes
// made elsewhere are visible.
func (s *Sessions) For(ctx context.Context, session string) (*Store, error) {
	s.mu.Lock()
	store, ok := s.stores.Get(session)
	if !ok {
		store = NewStore(NewRecordStorage(s.recorder, session))
		s.stores.Add(session, store)
	}
	s.mu.Unlock()

	if err := store.Load(ctx); err != nil {
		return nil, err
	}
	return store, nil
}
