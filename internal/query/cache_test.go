package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, cfg Config) *Cache {
	t.Helper()
	c, err := NewCache(cfg)
	require.NoError(t, err)
	return c
}

func TestGet_DeduplicatesConcurrentIdenticalQueries(t *testing.T) {
	c := newTestCache(t, Config{})
	key := NewKey(ResourceArticles, Params{Featured: Featured(true)})

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return "payload", nil
	}

	const callers = 8
	results := make([]any, callers)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = c.Get(context.Background(), key, loader)
	}()
	<-started

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.Get(context.Background(), key, loader)
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "payload", r)
	}
}

func TestGet_EquivalentKeysShareOneLoad(t *testing.T) {
	c := newTestCache(t, Config{FreshFor: time.Minute})

	var calls atomic.Int32
	loader := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return "all articles", nil
	}

	_, err := c.Get(context.Background(), NewKey(ResourceArticles, Params{Category: "all"}), loader)
	require.NoError(t, err)
	_, err = c.Get(context.Background(), NewKey(ResourceArticles, Params{}), loader)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestGet_StoresSuccessAndError(t *testing.T) {
	c := newTestCache(t, Config{})
	key := CategoriesKey()

	_, ok := c.Peek(key)
	assert.False(t, ok)

	data, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return []string{"science"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"science"}, data)

	entry, ok := c.Peek(key)
	require.True(t, ok)
	assert.Equal(t, StatusSuccess, entry.Status)

	boom := errors.New("boom")
	_, err = c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	entry, ok = c.Peek(key)
	require.True(t, ok)
	assert.Equal(t, StatusError, entry.Status)
	assert.ErrorIs(t, entry.Err, boom)
	assert.Equal(t, []string{"science"}, entry.Previous)
}

func TestPeek_PendingServesPreviousData(t *testing.T) {
	c := newTestCache(t, Config{})
	key := NewKey(ResourceArticles, Params{})

	_, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return "first", nil
	})
	require.NoError(t, err)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return "second", nil
		})
	}()
	<-started

	entry, ok := c.Peek(key)
	require.True(t, ok)
	assert.Equal(t, StatusPending, entry.Status)
	assert.Equal(t, "first", entry.Previous)

	close(release)
	<-done

	entry, _ = c.Peek(key)
	assert.Equal(t, StatusSuccess, entry.Status)
	assert.Equal(t, "second", entry.Data)
}

func TestSupersede_LateResultIsDiscarded(t *testing.T) {
	c := newTestCache(t, Config{})
	key := NewKey(ResourceArticles, Params{Search: "quantum"})

	started := make(chan struct{})
	release := make(chan struct{})
	var cancelled atomic.Bool
	var calls atomic.Int32
	oldResult := make(chan any, 1)
	go func() {
		data, _ := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
			if calls.Add(1) > 1 {
				return "reloaded", nil
			}
			close(started)
			<-ctx.Done()
			cancelled.Store(true)
			// the late response still arrives after cancellation
			<-release
			return "stale", nil
		})
		oldResult <- data
	}()
	<-started

	c.Supersede(key)

	entry, ok := c.Peek(key)
	require.True(t, ok)
	assert.Equal(t, StatusError, entry.Status)
	assert.ErrorIs(t, entry.Err, context.Canceled)

	data, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return "fresh", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", data)

	close(release)

	assert.Equal(t, "reloaded", <-oldResult, "a waiting caller joins the next load")
	assert.True(t, cancelled.Load(), "superseded load should see its context cancelled")
	entry, _ = c.Peek(key)
	assert.Equal(t, StatusSuccess, entry.Status)
	assert.NotEqual(t, "stale", entry.Data)
}

func TestSupersede_WaitingCallersGetLiveData(t *testing.T) {
	c := newTestCache(t, Config{})
	key := CategoriesKey()

	var calls atomic.Int32
	started := make(chan struct{})
	loader := func(ctx context.Context) (any, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return "cats", nil
	}

	const waiters = 4
	results := make(chan error, waiters)
	go func() {
		_, err := c.Get(context.Background(), key, loader)
		results <- err
	}()
	<-started
	for i := 1; i < waiters; i++ {
		go func() {
			_, err := c.Get(context.Background(), key, loader)
			results <- err
		}()
	}
	time.Sleep(20 * time.Millisecond)

	c.Supersede(key)

	for i := 0; i < waiters; i++ {
		assert.NoError(t, <-results)
	}
	entry, ok := c.Peek(key)
	require.True(t, ok)
	assert.Equal(t, StatusSuccess, entry.Status)
	assert.Equal(t, "cats", entry.Data)
}

func TestGet_SupersededTwiceGivesUp(t *testing.T) {
	c := newTestCache(t, Config{})
	key := CategoriesKey()

	loading := make(chan struct{}, supersedeRetries+1)
	errCh := make(chan error, 1)
	go func() {
		_, err := c.Get(context.Background(), key, func(ctx context.Context) (any, error) {
			loading <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		})
		errCh <- err
	}()

	for i := 0; i <= supersedeRetries; i++ {
		<-loading
		c.Supersede(key)
	}

	assert.ErrorIs(t, <-errCh, ErrSuperseded)
}

func TestGet_CallerCancelDoesNotAbortSharedLoad(t *testing.T) {
	c := newTestCache(t, Config{})
	key := NewKey(ResourceArticles, Params{Category: "science"})

	release := make(chan struct{})
	loadDone := make(chan struct{})
	loader := func(ctx context.Context) (any, error) {
		defer close(loadDone)
		select {
		case <-release:
			return "science articles", nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.Get(ctx, key, loader)
		errCh <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	require.ErrorIs(t, <-errCh, context.Canceled)

	close(release)
	<-loadDone

	require.Eventually(t, func() bool {
		e, ok := c.Peek(key)
		return ok && e.Status == StatusSuccess
	}, time.Second, 5*time.Millisecond)
}

func TestGet_FreshForSkipsReload(t *testing.T) {
	c := newTestCache(t, Config{FreshFor: time.Minute})
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	key := CategoriesKey()

	var calls atomic.Int32
	loader := func(ctx context.Context) (any, error) {
		calls.Add(1)
		return calls.Load(), nil
	}

	first, _ := c.Get(context.Background(), key, loader)
	second, _ := c.Get(context.Background(), key, loader)
	assert.Equal(t, first, second)

	now = now.Add(2 * time.Minute)
	third, _ := c.Get(context.Background(), key, loader)
	assert.Equal(t, int32(2), third)
}

func TestPurge_DropsEntriesAndCancelsLoads(t *testing.T) {
	c := newTestCache(t, Config{FreshFor: time.Hour})
	done := CategoriesKey()
	pending := NewKey(ResourceArticles, Params{})

	_, err := c.Get(context.Background(), done, func(ctx context.Context) (any, error) { return "cats", nil })
	require.NoError(t, err)

	started := make(chan struct{})
	var calls atomic.Int32
	result := make(chan any, 1)
	go func() {
		data, _ := c.Get(context.Background(), pending, func(ctx context.Context) (any, error) {
			if calls.Add(1) > 1 {
				return "reloaded", nil
			}
			close(started)
			<-ctx.Done()
			return "late", nil
		})
		result <- data
	}()
	<-started

	c.Purge()

	_, ok := c.Peek(done)
	assert.False(t, ok)
	assert.Equal(t, "reloaded", <-result)
	entry, ok := c.Peek(pending)
	require.True(t, ok)
	assert.Equal(t, "reloaded", entry.Data, "a purged load must not store its result")
}
