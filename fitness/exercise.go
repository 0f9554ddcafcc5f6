// Package fitness holds the three paginated lists of the training log:
// the exercise library, the workouts and the workout log groups.
//
// Each list is a record type plus a filter compiled into a predicate, paged
// through the generic keyset.Paginator:
//
//	exercises := fitness.Exercises(
//	    sqlboiler.NewTableFetcher[*fitness.Exercise](db, sqlboiler.SQLiteDialect, fitness.TableExercises),
//	)
//	page, err := exercises.Paginate(ctx, fitness.ExerciseFilter{Grip: []fitness.Grip{fitness.Pronated}}, params)
package fitness

import (
	"github.com/aarondl/null/v8"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
)

// TableExercises is the exercise library table.
const TableExercises = "exercise_library"

// ExerciseColumns holds the column names of the exercise library table.
var ExerciseColumns = struct {
	ID                  string
	Name                string
	PushOrPull          string
	DynamicOrStatic     string
	StraightOrBent      string
	SquatOrHinge        string
	UpperOrLower        string
	CompoundOrIsolation string
	LeverVariation      string
	Grip                string
	GripWidth           string
	Description         string
}{
	ID:                  "id",
	Name:                "name",
	PushOrPull:          "push_or_pull",
	DynamicOrStatic:     "dynamic_or_static",
	StraightOrBent:      "straight_or_bent",
	SquatOrHinge:        "squat_or_hinge",
	UpperOrLower:        "upper_or_lower",
	CompoundOrIsolation: "compound_or_isolation",
	LeverVariation:      "lever_variation",
	Grip:                "grip",
	GripWidth:           "grip_width",
	Description:         "description",
}

// Exercise is an object representing the exercise library table.
type Exercise struct {
	ID                  int64               `boil:"id" json:"id"`
	Name                string              `boil:"name" json:"name"`
	PushOrPull          null.String         `boil:"push_or_pull" json:"push_or_pull"`
	DynamicOrStatic     DynamicOrStatic     `boil:"dynamic_or_static" json:"dynamic_or_static"`
	StraightOrBent      null.String         `boil:"straight_or_bent" json:"straight_or_bent"`
	SquatOrHinge        null.String         `boil:"squat_or_hinge" json:"squat_or_hinge"`
	UpperOrLower        UpperOrLower        `boil:"upper_or_lower" json:"upper_or_lower"`
	CompoundOrIsolation CompoundOrIsolation `boil:"compound_or_isolation" json:"compound_or_isolation"`
	LeverVariation      null.String         `boil:"lever_variation" json:"lever_variation"`
	Grip                null.String         `boil:"grip" json:"grip"`
	GripWidth           null.String         `boil:"grip_width" json:"grip_width"`
	Description         null.String         `boil:"description" json:"description"`
}

// GetID implements keyset.Record.
func (e *Exercise) GetID() int64 { return e.ID }

// Field implements predicate.Fields.
func (e *Exercise) Field(name string) (any, bool) {
	c := ExerciseColumns
	switch name {
	case c.ID:
		return e.ID, true
	case c.Name:
		return e.Name, true
	case c.PushOrPull:
		return nullable(e.PushOrPull), true
	case c.DynamicOrStatic:
		return string(e.DynamicOrStatic), true
	case c.StraightOrBent:
		return nullable(e.StraightOrBent), true
	case c.SquatOrHinge:
		return nullable(e.SquatOrHinge), true
	case c.UpperOrLower:
		return string(e.UpperOrLower), true
	case c.CompoundOrIsolation:
		return string(e.CompoundOrIsolation), true
	case c.LeverVariation:
		return nullable(e.LeverVariation), true
	case c.Grip:
		return nullable(e.Grip), true
	case c.GripWidth:
		return nullable(e.GripWidth), true
	case c.Description:
		return nullable(e.Description), true
	}
	return nil, false
}

// ExerciseFilter narrows the exercise library.
// Every field is optional; an empty slice constrains nothing.
type ExerciseFilter struct {
	Name                *string
	PushOrPull          []PushOrPull
	DynamicOrStatic     []DynamicOrStatic
	StraightOrBent      []StraightOrBentArm
	SquatOrHinge        []SquatOrHinge
	UpperOrLower        []UpperOrLower
	CompoundOrIsolation []CompoundOrIsolation
	LeverVariation      []LeverVariation
	Grip                []Grip
	GripWidth           []GripWidth
}

// Compile implements predicate.Filter.
func (f ExerciseFilter) Compile() (predicate.Predicate, error) {
	c := ExerciseColumns
	return predicate.NewBuilder().
		Add(predicate.Substring(c.Name, f.Name)).
		Try(predicate.OneOf(c.PushOrPull, f.PushOrPull)).
		Try(predicate.OneOf(c.DynamicOrStatic, f.DynamicOrStatic)).
		Try(predicate.OneOf(c.StraightOrBent, f.StraightOrBent)).
		Try(predicate.OneOf(c.SquatOrHinge, f.SquatOrHinge)).
		Try(predicate.OneOf(c.UpperOrLower, f.UpperOrLower)).
		Try(predicate.OneOf(c.CompoundOrIsolation, f.CompoundOrIsolation)).
		Try(predicate.OneOf(c.LeverVariation, f.LeverVariation)).
		Try(predicate.OneOf(c.Grip, f.Grip)).
		Try(predicate.OneOf(c.GripWidth, f.GripWidth)).
		Build()
}

// Exercises returns a paginator over the exercise library.
func Exercises(fetcher keyset.Fetcher[*Exercise], opts ...keyset.Option) *keyset.Paginator[*Exercise, ExerciseFilter] {
	return keyset.New[*Exercise, ExerciseFilter](fetcher, opts...)
}

func nullable(s null.String) any {
	if !s.Valid {
		return nil
	}
	return s.String
}
