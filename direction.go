package keyset

import (
	"strings"

	"github.com/friendsofgo/errors"
)

// Direction is the way a single page request walks the identifier order.
// It belongs to one request, not to a session: callers may switch direction
// between requests without losing their cursor trail.
type Direction int

const (
	// Forward walks identifiers ascending. It is the zero value.
	Forward Direction = iota
	// Backward walks identifiers descending.
	Backward
)

// String returns "forward" or "backward".
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Valid reports whether d is Forward or Backward.
func (d Direction) Valid() bool {
	return d == Forward || d == Backward
}

// ParseDirection parses a direction, case-insensitive.
// Forward is "forward", "next" or "asc"; Backward is "backward", "prev",
// "previous" or "desc".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "next", "asc":
		return Forward, nil
	case "backward", "prev", "previous", "desc":
		return Backward, nil
	default:
		return Forward, errors.Wrapf(ErrInvalidDirection, "%q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, errors.Wrapf(ErrInvalidDirection, "%d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
