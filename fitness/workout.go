package fitness

import (
	"time"

	"github.com/aarondl/null/v8"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
)

// TableWorkouts is the workouts table.
const TableWorkouts = "workouts"

// WorkoutColumns holds the column names of the workouts table.
var WorkoutColumns = struct {
	ID          string
	CreatedAt   string
	Name        string
	Description string
	Active      string
}{
	ID:          "id",
	CreatedAt:   "created_at",
	Name:        "name",
	Description: "description",
	Active:      "active",
}

// Workout is an object representing the workouts table.
type Workout struct {
	ID          int64       `boil:"id" json:"id"`
	CreatedAt   time.Time   `boil:"created_at" json:"created_at"`
	Name        string      `boil:"name" json:"name"`
	Description null.String `boil:"description" json:"description"`
	Active      bool        `boil:"active" json:"active"`
}

// GetID implements keyset.Record.
func (w *Workout) GetID() int64 { return w.ID }

// Field implements predicate.Fields.
func (w *Workout) Field(name string) (any, bool) {
	c := WorkoutColumns
	switch name {
	case c.ID:
		return w.ID, true
	case c.CreatedAt:
		return w.CreatedAt, true
	case c.Name:
		return w.Name, true
	case c.Description:
		return nullable(w.Description), true
	case c.Active:
		return w.Active, true
	}
	return nil, false
}

// WorkoutFilter narrows the workout list.
type WorkoutFilter struct {
	Name        *string
	Description *string
	Active      *bool
}

// Compile implements predicate.Filter.
func (f WorkoutFilter) Compile() (predicate.Predicate, error) {
	c := WorkoutColumns
	return predicate.All(
		predicate.Substring(c.Name, f.Name),
		predicate.Substring(c.Description, f.Description),
		predicate.EqualTo(c.Active, f.Active),
	), nil
}

// Workouts returns a paginator over the workouts.
func Workouts(fetcher keyset.Fetcher[*Workout], opts ...keyset.Option) *keyset.Paginator[*Workout, WorkoutFilter] {
	return keyset.New[*Workout, WorkoutFilter](fetcher, opts...)
}
