// Package fallback decides, per page, whether live content can be trusted
// or the whole page must be served from the sample corpus.
package fallback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/DjordjeVuckovic/brainfeed/internal/apperr"
	"github.com/DjordjeVuckovic/brainfeed/internal/content"
	"github.com/DjordjeVuckovic/brainfeed/internal/metrics"
)

// Banner is shown on every page rendered from the sample corpus.
const Banner = "Backend unavailable - displaying sample content"

// ErrAbsent reports a sub-query that finished without error but without data.
var ErrAbsent = errors.New("query returned no data")

// Data is any sub-query result. Len reports how many items it holds.
type Data interface {
	Len() int
}

type Results map[string]Data

type Query struct {
	Name string
	Load func(ctx context.Context, p content.Provider) (Data, error)
}

// Plan lists every sub-query a page needs. Empty, when set, decides whether
// successfully loaded live results are legitimately empty.
type Plan struct {
	Page    string
	Queries []Query
	Empty   func(Results) bool
}

type Resolution struct {
	Page     string
	State    State
	Provider string
	Results  Results
	// Banner and Reason are set only for fallback resolutions.
	Banner string
	Reason apperr.Kind
}

type Resolver struct {
	live   content.Provider
	static content.Provider
}

func NewResolver(live, static content.Provider) *Resolver {
	return &Resolver{live: live, static: static}
}

// Resolve runs the plan against the live provider. If any sub-query fails
// in a way that makes live data untrustworthy, the whole plan is re-run
// against the static provider. A not-found answer is returned as an error.
func (r *Resolver) Resolve(ctx context.Context, plan Plan) (*Resolution, error) {
	page := NewPage(plan.Page)

	results, err := r.run(ctx, r.live, plan)
	if err == nil {
		state := StateLive
		if plan.Empty != nil && plan.Empty(results) {
			state = StateEmpty
		}
		return r.finish(page, state, r.live, results, apperr.KindNone)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if !apperr.TriggersFallback(err) {
		return nil, err
	}

	reason := apperr.KindOf(err)
	slog.Warn("Live content rejected, serving sample content", "page", plan.Page, "reason", reason, "error", err)

	results, ferr := r.run(ctx, r.static, plan)
	if ferr != nil {
		return nil, ferr
	}
	return r.finish(page, StateFallback, r.static, results, reason)
}

func (r *Resolver) finish(page *Page, state State, p content.Provider, results Results, reason apperr.Kind) (*Resolution, error) {
	if err := page.Transition(state); err != nil {
		return nil, err
	}
	metrics.ObservePage(page.name, string(state))

	res := &Resolution{
		Page:     page.name,
		State:    state,
		Provider: p.Name(),
		Results:  results,
	}
	if state == StateFallback {
		res.Banner = Banner
		res.Reason = reason
	}
	return res, nil
}

func (r *Resolver) run(ctx context.Context, p content.Provider, plan Plan) (Results, error) {
	var mu sync.Mutex
	results := make(Results, len(plan.Queries))

	g, gctx := errgroup.WithContext(ctx)
	for _, q := range plan.Queries {
		g.Go(func() error {
			data, err := q.Load(gctx, p)
			if err != nil {
				return fmt.Errorf("%s: %w", q.Name, err)
			}
			if absent(data) {
				return fmt.Errorf("%s: %w", q.Name, ErrAbsent)
			}
			mu.Lock()
			results[q.Name] = data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func absent(d Data) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Pointer:
		return v.IsNil()
	default:
		return false
	}
}
