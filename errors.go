package keyset

import (
	"fmt"

	"github.com/friendsofgo/errors"
)

var (
	// ErrInvalidLimit is returned for a page size of zero or less.
	ErrInvalidLimit = errors.New("keyset: limit must be a positive integer")

	// ErrInvalidDirection is returned for a direction other than Forward or Backward.
	ErrInvalidDirection = errors.New("keyset: invalid direction")

	// ErrInvalidCursor is returned when an opaque cursor cannot be decoded.
	ErrInvalidCursor = errors.New("keyset: invalid cursor")

	// ErrRequestInFlight is returned by Session when a page request is issued
	// while the previous one has not completed.
	ErrRequestInFlight = errors.New("keyset: page request already in flight")

	// ErrNoNextPage is returned by Session.Next when the last page had no successor.
	ErrNoNextPage = errors.New("keyset: no next page")

	// ErrNoPreviousPage is returned by Session.Previous when the last page had no predecessor.
	ErrNoPreviousPage = errors.New("keyset: no previous page")
)

// PageSizeError is returned when the requested page size exceeds the maximum allowed.
type PageSizeError struct {
	Requested int
	Maximum   int
}

func (e *PageSizeError) Error() string {
	return fmt.Sprintf("requested page size %d exceeds maximum allowed page size of %d",
		e.Requested, e.Maximum)
}
