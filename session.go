package keyset

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/nrfta/keyset-go/predicate"
)

// Session binds a Paginator to one view's State and filter.
//
// A Session serializes its requests: a call issued while another is still
// running fails with ErrRequestInFlight instead of racing to overwrite the
// cursors. State only changes when a fetch succeeds, so a failed request can be
// retried as-is.
type Session[T Record, F predicate.Filter] struct {
	paginator *Paginator[T, F]
	inFlight  atomic.Bool

	mu     sync.Mutex
	state  State
	filter F
}

// NewSession creates a Session starting at page 1 with filter.
func NewSession[T Record, F predicate.Filter](p *Paginator[T, F], filter F) *Session[T, F] {
	return &Session[T, F]{
		paginator: p,
		state:     p.NewState(),
		filter:    filter,
	}
}

// State returns a copy of the current navigation state.
func (s *Session[T, F]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Filter returns the active filter.
func (s *Session[T, F]) Filter() F {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Load repeats the last request described by the state.
func (s *Session[T, F]) Load(ctx context.Context) (*Page[T], error) {
	return s.run(ctx, func(st State) (State, error) { return st, nil })
}

// Next loads the page after the current one.
func (s *Session[T, F]) Next(ctx context.Context) (*Page[T], error) {
	return s.run(ctx, func(st State) (State, error) {
		if !st.HasNext() {
			return st, ErrNoNextPage
		}
		return st.GoForwards(), nil
	})
}

// Previous loads the page before the current one.
func (s *Session[T, F]) Previous(ctx context.Context) (*Page[T], error) {
	return s.run(ctx, func(st State) (State, error) {
		if !st.HasPrevious() {
			return st, ErrNoPreviousPage
		}
		return st.GoBackwards(), nil
	})
}

// SetFilter replaces the filter and loads page 1 under it.
//
// The whole state is restarted, not just the next cursor: continuing from a
// cursor chosen under the old filter would page from an arbitrary position.
func (s *Session[T, F]) SetFilter(ctx context.Context, filter F) (*Page[T], error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}
	defer s.inFlight.Store(false)

	s.mu.Lock()
	next := s.state.Restart()
	s.mu.Unlock()

	page, err := s.paginator.Paginate(ctx, filter, next.Params())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state = next.ApplyResponse(page.Cursors())
	s.filter = filter
	s.mu.Unlock()

	return page, nil
}

// SetLimit changes the page size and reloads page 1.
func (s *Session[T, F]) SetLimit(ctx context.Context, limit int) (*Page[T], error) {
	return s.run(ctx, func(st State) (State, error) {
		return st.Restart().WithLimit(limit), nil
	})
}

func (s *Session[T, F]) run(ctx context.Context, transition func(State) (State, error)) (*Page[T], error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrRequestInFlight
	}
	defer s.inFlight.Store(false)

	s.mu.Lock()
	next, err := transition(s.state)
	filter := s.filter
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	page, err := s.paginator.Paginate(ctx, filter, next.Params())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state = next.ApplyResponse(page.Cursors())
	s.mu.Unlock()

	return page, nil
}
