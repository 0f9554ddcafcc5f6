package fitness

import (
	"time"

	"github.com/aarondl/null/v8"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
)

// TableLogGroups holds one row per logged training day.
const TableLogGroups = "workout_log_groups"

// LogGroupColumns holds the column names of the log groups table.
var LogGroupColumns = struct {
	ID        string
	CreatedAt string
	Date      string
	Notes     string
}{
	ID:        "id",
	CreatedAt: "created_at",
	Date:      "date",
	Notes:     "notes",
}

// LogGroup groups the sets logged on one date.
type LogGroup struct {
	ID        int64       `boil:"id" json:"id"`
	CreatedAt time.Time   `boil:"created_at" json:"created_at"`
	Date      time.Time   `boil:"date" json:"date"`
	Notes     null.String `boil:"notes" json:"notes"`
}

// GetID implements keyset.Record.
func (g *LogGroup) GetID() int64 { return g.ID }

// Field implements predicate.Fields.
func (g *LogGroup) Field(name string) (any, bool) {
	c := LogGroupColumns
	switch name {
	case c.ID:
		return g.ID, true
	case c.CreatedAt:
		return g.CreatedAt, true
	case c.Date:
		return g.Date, true
	case c.Notes:
		return nullable(g.Notes), true
	}
	return nil, false
}

// LogGroupFilter narrows the log groups to a date range and notes text.
// Both date bounds are inclusive; a reversed range matches nothing.
type LogGroupFilter struct {
	DateFrom *time.Time
	DateTo   *time.Time
	Notes    *string
}

// Compile implements predicate.Filter.
func (f LogGroupFilter) Compile() (predicate.Predicate, error) {
	c := LogGroupColumns
	return predicate.All(
		predicate.AtLeast(c.Date, f.DateFrom),
		predicate.AtMost(c.Date, f.DateTo),
		predicate.Substring(c.Notes, f.Notes),
	), nil
}

// LogGroups returns a paginator over the workout log groups.
func LogGroups(fetcher keyset.Fetcher[*LogGroup], opts ...keyset.Option) *keyset.Paginator[*LogGroup, LogGroupFilter] {
	return keyset.New[*LogGroup, LogGroupFilter](fetcher, opts...)
}
