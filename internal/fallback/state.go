package fallback

import (
	"fmt"
	"sync"
)

type State string

const (
	StateLoading  State = "loading"
	StateLive     State = "live"
	StateFallback State = "fallback"
	StateEmpty    State = "empty"
)

func (s State) Terminal() bool {
	return s == StateLive || s == StateFallback || s == StateEmpty
}

type TransitionError struct {
	Page     string
	From, To State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("page %s: invalid transition %s -> %s", e.Page, e.From, e.To)
}

// Page tracks the resolution state of one page render. It starts in
// loading and moves exactly once to a terminal state.
type Page struct {
	mu    sync.Mutex
	name  string
	state State
}

func NewPage(name string) *Page {
	return &Page{name: name, state: StateLoading}
}

func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Page) Transition(to State) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != StateLoading || !to.Terminal() {
		return &TransitionError{Page: p.name, From: p.state, To: to}
	}
	p.state = to
	return nil
}
