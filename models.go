package keyset

import "time"

// Page represents a single page of keyset-paginated results.
//
// Items are always ascending by id, whichever direction was traveled, so
// rendering code never has to special-case display order.
//
// Type parameter T is the record type being paginated.
type Page[T any] struct {
	// Items contains the records for this page, ascending by id.
	Items []T

	// NextCursor, when set, is the cursor to pass with Forward to get the next page.
	NextCursor *int64

	// PrevCursor, when set, is the cursor to pass with Backward to get the previous page.
	PrevCursor *int64

	// Metadata provides observability and debugging information.
	Metadata Metadata
}

// HasNext reports whether a following page exists.
func (p *Page[T]) HasNext() bool {
	return p != nil && p.NextCursor != nil
}

// HasPrevious reports whether a preceding page exists.
func (p *Page[T]) HasPrevious() bool {
	return p != nil && p.PrevCursor != nil
}

// Cursors returns the page's navigation cursors, ready to fold into a State.
func (p *Page[T]) Cursors() Cursors {
	if p == nil {
		return Cursors{}
	}
	return Cursors{Next: p.NextCursor, Prev: p.PrevCursor}
}

// Cursors is the navigation part of a page response.
type Cursors struct {
	Next *int64 `json:"next,omitempty"`
	Prev *int64 `json:"prev,omitempty"`
}

// Metadata provides observability and debugging information about a page request.
// This data is useful for monitoring, alerting, and optimization.
type Metadata struct {
	// Strategy identifies the pagination strategy. Always "keyset".
	Strategy string

	// TraceID correlates log lines of one request.
	TraceID string

	// Direction is the direction of the request.
	Direction Direction

	// Limit is the requested page size.
	Limit int

	// QueryTimeMs is the time spent in the store, in whole milliseconds.
	QueryTimeMs int64

	// QueryDuration is the time spent in the store at full resolution.
	QueryDuration time.Duration

	// ItemsExamined is the number of rows returned by the store (up to limit+1).
	ItemsExamined int

	// HasMore reports whether the store returned the extra over-fetched row.
	HasMore bool
}

const strategyKeyset = "keyset"
