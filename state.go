package keyset

// State is the caller-held navigation state of one paginated view.
//
// CurrentCursor and Direction always describe the last request issued;
// NextCursor and PrevCursor always describe the last response received.
// All transitions are value methods returning a new State, so the state
// machine can be exercised without a store.
//
// Example:
//
//	state := keyset.NewState()
//	page, err := paginator.Paginate(ctx, filter, state.Params())
//	if err != nil {
//	    return err // state is unchanged, the same request can be retried
//	}
//	state = state.ApplyResponse(page.Cursors())
//	if state.HasNext() {
//	    state = state.GoForwards()
//	}
type State struct {
	Limit         int       `json:"limit"`
	NextCursor    *int64    `json:"next_cursor,omitempty"`
	PrevCursor    *int64    `json:"prev_cursor,omitempty"`
	CurrentCursor *int64    `json:"current_cursor,omitempty"`
	Direction     Direction `json:"direction"`
}

// NewState returns the baseline state: DefaultPageSize, no cursors, Forward.
func NewState() State {
	return State{Limit: DefaultPageSize, Direction: Forward}
}

// GoForwards points the next request after the stored next cursor.
// Check HasNext first; without a next cursor the request restarts at page 1.
func (s State) GoForwards() State {
	s.CurrentCursor = clone(s.NextCursor)
	s.Direction = Forward
	return s
}

// GoBackwards points the next request before the stored previous cursor.
func (s State) GoBackwards() State {
	s.CurrentCursor = clone(s.PrevCursor)
	s.Direction = Backward
	return s
}

// ApplyResponse records the cursors of the page just received.
func (s State) ApplyResponse(c Cursors) State {
	s.NextCursor = clone(c.Next)
	s.PrevCursor = clone(c.Prev)
	return s
}

// ResetPagination clears only the next cursor. The current cursor and
// direction are kept, so the next fetch repeats the last request.
// Use Restart to return to page 1.
func (s State) ResetPagination() State {
	s.NextCursor = nil
	return s
}

// Restart returns to the page 1, Forward baseline, keeping the page size.
func (s State) Restart() State {
	return State{Limit: s.Limit, Direction: Forward}
}

// WithLimit changes the page size. Cursors are kept; ids do not depend on it.
func (s State) WithLimit(limit int) State {
	s.Limit = limit
	return s
}

// Params projects the state into the params of the next request.
func (s State) Params() Params {
	return Params{
		Limit:     s.Limit,
		Cursor:    clone(s.CurrentCursor),
		Direction: s.Direction,
	}
}

// HasNext reports whether the last response had a following page.
func (s State) HasNext() bool {
	return s.NextCursor != nil
}

// HasPrevious reports whether the last response had a preceding page.
func (s State) HasPrevious() bool {
	return s.PrevCursor != nil
}

func clone(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
