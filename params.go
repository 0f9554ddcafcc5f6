package keyset

import "github.com/friendsofgo/errors"

const (
	// DefaultPageSize is the page size a fresh State starts with.
	DefaultPageSize = 50

	// DefaultMaxPageSize is the default maximum page size allowed.
	// This protects against resource exhaustion from unreasonably large page requests
	// and keeps limit+1 far away from integer overflow.
	DefaultMaxPageSize = 1000
)

// Params describes one page request.
//
// Cursor is exclusive: Forward returns records with id > Cursor and Backward
// returns records with id < Cursor. A nil Cursor starts from the respective end
// of the order.
type Params struct {
	Limit     int       `json:"limit"`
	Cursor    *int64    `json:"cursor,omitempty"`
	Direction Direction `json:"direction"`
}

// FirstPage returns the params of the first forward page.
func FirstPage(limit int) Params {
	return Params{Limit: limit, Direction: Forward}
}

// After returns Forward params continuing after id.
func After(id int64, limit int) Params {
	return Params{Limit: limit, Cursor: &id, Direction: Forward}
}

// Before returns Backward params continuing before id.
func Before(id int64, limit int) Params {
	return Params{Limit: limit, Cursor: &id, Direction: Backward}
}

// Validate checks params against the default PageConfig.
func (p Params) Validate() error {
	return NewPageConfig().Validate(p)
}

// PageConfig holds pagination configuration options.
// Use NewPageConfig() to create a config with sensible defaults,
// then customize using the With* methods.
//
// Example:
//
//	config := keyset.NewPageConfig().WithMaxSize(500)
//	if err := config.Validate(params); err != nil {
//	    return nil, err
//	}
type PageConfig struct {
	// DefaultSize is the page size used by NewState.
	DefaultSize int

	// MaxSize is the maximum allowed page size. Requests exceeding this
	// are rejected with *PageSizeError.
	MaxSize int
}

// NewPageConfig creates a PageConfig with sensible defaults:
// - DefaultSize: 50
// - MaxSize: 1000
func NewPageConfig() *PageConfig {
	return &PageConfig{
		DefaultSize: DefaultPageSize,
		MaxSize:     DefaultMaxPageSize,
	}
}

// WithDefaultSize sets the default page size and returns the config for chaining.
func (c *PageConfig) WithDefaultSize(size int) *PageConfig {
	if size > 0 {
		c.DefaultSize = size
	}
	return c
}

// WithMaxSize sets the maximum page size and returns the config for chaining.
func (c *PageConfig) WithMaxSize(size int) *PageConfig {
	if size > 0 {
		c.MaxSize = size
	}
	return c
}

// Validate rejects params that must never reach a store:
//   - Limit <= 0 (ErrInvalidLimit), since fetching limit+1 = 1 row or fewer
//     would corrupt the has-more computation
//   - Limit above MaxSize (*PageSizeError)
//   - a Direction other than Forward or Backward (ErrInvalidDirection)
func (c *PageConfig) Validate(p Params) error {
	if c == nil {
		c = NewPageConfig()
	}

	if p.Limit <= 0 {
		return errors.Wrapf(ErrInvalidLimit, "got %d", p.Limit)
	}

	maxSize := c.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxPageSize
	}

	if p.Limit > maxSize {
		return &PageSizeError{
			Requested: p.Limit,
			Maximum:   maxSize,
		}
	}

	if !p.Direction.Valid() {
		return errors.Wrapf(ErrInvalidDirection, "%d", int(p.Direction))
	}

	return nil
}

func (c *PageConfig) defaultSize() int {
	if c == nil || c.DefaultSize <= 0 {
		return DefaultPageSize
	}
	return c.DefaultSize
}
