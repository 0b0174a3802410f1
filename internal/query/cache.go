package query

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/DjordjeVuckovic/brainfeed/internal/metrics"
)

const (
	DefaultSize      = 256
	supersedeRetries = 1
)

// ErrSuperseded is returned to callers of a load that was superseded or
// purged and whose replacement was superseded as well.
var ErrSuperseded = errors.New("query superseded")

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Entry is the current state of one key. While a load is pending, Previous
// holds the data of the last successful load, if any.
type Entry struct {
	Status     Status
	Data       any
	Err        error
	Previous   any
	Generation uint64
	UpdatedAt  time.Time
}

// Loader performs the network work for one key.
type Loader func(ctx context.Context) (any, error)

type Config struct {
	Size int
	// FreshFor lets Get answer from a successful entry younger than this
	// without loading again. Zero always loads.
	FreshFor time.Duration
}

type flight struct {
	generation uint64
	cancel     context.CancelFunc
}

type Cache struct {
	mu       sync.Mutex
	entries  *lru.Cache[string, Entry]
	flights  map[string]flight
	seq      uint64
	group    singleflight.Group
	freshFor time.Duration
	now      func() time.Time
}

func NewCache(cfg Config) (*Cache, error) {
	size := cfg.Size
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, Entry](size)
	if err != nil {
		return nil, err
	}
	return &Cache{
		entries:  entries,
		flights:  make(map[string]flight),
		freshFor: cfg.FreshFor,
		now:      time.Now,
	}, nil
}

// Get returns the result for key, attaching to an outstanding identical load
// instead of starting a second one. A caller whose ctx ends stops waiting;
// the shared load keeps going for the others. Callers of a superseded load
// join the next one, once.
func (c *Cache) Get(ctx context.Context, key Key, load Loader) (any, error) {
	id := key.String()

	var (
		data any
		err  error
	)
	for attempt := 0; attempt <= supersedeRetries; attempt++ {
		if fresh, ok := c.fresh(id); ok {
			return fresh, nil
		}
		data, err = c.join(ctx, key, load)
		if !errors.Is(err, ErrSuperseded) || ctx.Err() != nil {
			return data, err
		}
		slog.Debug("Query superseded while waiting, joining next load", "key", id)
	}
	return data, err
}

func (c *Cache) join(ctx context.Context, key Key, load Loader) (any, error) {
	id := key.String()
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(id, func() (any, error) {
		return c.run(detached, id, load)
	})

	select {
	case res := <-ch:
		if res.Shared {
			metrics.ObserveQueryJoin(string(key.Resource))
		}
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Peek returns the current entry for key without loading.
func (c *Cache) Peek(key Key) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Get(key.String())
}

// Supersede cancels the outstanding load for key, if any. Its result, when
// it eventually arrives, is discarded; the next Get starts a new load.
func (c *Cache) Supersede(key Key) {
	id := key.String()

	c.mu.Lock()
	f, ok := c.flights[id]
	if ok {
		delete(c.flights, id)
		c.seq++
		if e, found := c.entries.Get(id); found && e.Status == StatusPending && e.Generation == f.generation {
			c.entries.Add(id, Entry{
				Status:     StatusError,
				Err:        context.Canceled,
				Previous:   e.Previous,
				Generation: c.seq,
				UpdatedAt:  c.now(),
			})
		}
	}
	c.mu.Unlock()

	if ok {
		c.group.Forget(id)
		f.cancel()
		slog.Debug("Query superseded", "key", id, "generation", f.generation)
	}
}

// Purge supersedes every outstanding load and drops all entries.
func (c *Cache) Purge() {
	c.mu.Lock()
	flights := c.flights
	c.flights = make(map[string]flight)
	c.seq++
	c.entries.Purge()
	c.mu.Unlock()

	for id, f := range flights {
		c.group.Forget(id)
		f.cancel()
	}
	slog.Info("Query cache purged", "cancelled", len(flights))
}

func (c *Cache) fresh(id string) (any, bool) {
	if c.freshFor <= 0 {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Get(id)
	if !ok || e.Status != StatusSuccess {
		return nil, false
	}
	if c.now().Sub(e.UpdatedAt) >= c.freshFor {
		return nil, false
	}
	return e.Data, true
}

func (c *Cache) run(ctx context.Context, id string, load Loader) (any, error) {
	fctx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.mu.Lock()
	c.seq++
	gen := c.seq
	c.flights[id] = flight{generation: gen, cancel: cancel}
	pending := Entry{Status: StatusPending, Generation: gen, UpdatedAt: c.now()}
	if prev, ok := c.entries.Get(id); ok {
		if prev.Status == StatusSuccess {
			pending.Previous = prev.Data
		} else {
			pending.Previous = prev.Previous
		}
	}
	c.entries.Add(id, pending)
	c.mu.Unlock()

	data, err := load(fctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	cur, ok := c.flights[id]
	if !ok || cur.generation != gen {
		// never overwrite a newer state
		return nil, ErrSuperseded
	}
	delete(c.flights, id)

	next := Entry{Generation: gen, UpdatedAt: c.now()}
	if err != nil {
		next.Status = StatusError
		next.Err = err
		next.Previous = pending.Previous
	} else {
		next.Status = StatusSuccess
		next.Data = data
	}
	c.entries.Add(id, next)
	return data, err
}
