package sqlboiler

import "github.com/aarondl/strmangle"

// Option configures how FetchParams are rendered.
type Option func(*renderer)

type renderer struct {
	table    string
	idColumn string
	columns  map[string]string
	lq, rq   rune
}

func newRenderer(opts []Option) *renderer {
	r := &renderer{
		idColumn: "id",
		lq:       '"',
		rq:       '"',
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithIDColumn sets the id column. The default is "id".
func WithIDColumn(column string) Option {
	return func(r *renderer) {
		if column != "" {
			r.idColumn = column
		}
	}
}

// WithTable qualifies every rendered column with table.
// Needed when the query joins tables sharing column names.
func WithTable(table string) Option {
	return func(r *renderer) {
		r.table = table
	}
}

// WithColumns maps predicate field names to column names.
// Once set, predicates on fields missing from columns are rejected with
// *predicate.UnknownFieldError instead of being sent to the database.
func WithColumns(columns map[string]string) Option {
	return func(r *renderer) {
		r.columns = columns
	}
}

// WithQuotes sets the identifier quote characters, '"' by default.
// MySQL uses '`'.
func WithQuotes(lq, rq rune) Option {
	return func(r *renderer) {
		r.lq, r.rq = lq, rq
	}
}

func (r *renderer) quote(column string) string {
	if r.table != "" {
		column = r.table + "." + column
	}
	return strmangle.IdentQuote(r.lq, r.rq, column)
}
