// Package sqlboiler provides adapters for running keyset pagination on SQLBoiler.
//
// The keyset core hands a store a keyset.FetchParams: a compiled predicate, an
// id order, an optional exclusive id bound and a limit. This package renders
// those into SQLBoiler query mods, so the filtering, bounding and ordering all
// happen inside the database.
//
// Two fetchers are provided:
//
//	// Generated models: plug KeysetToQueryMods into the model's query.
//	fetcher := sqlboiler.NewFetcher(
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Exercise, error) {
//	        return models.Exercises(mods...).All(ctx, db)
//	    },
//	)
//
//	// Any table bound into a struct with boil tags.
//	fetcher := sqlboiler.NewTableFetcher[*fitness.Workout](db, sqlboiler.PostgresDialect, "workouts")
package sqlboiler

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"github.com/nrfta/keyset-go"
)

// QueryFunc executes a SQLBoiler query and returns results.
//
// Type parameter T is the SQLBoiler model type (e.g., *models.Exercise).
type QueryFunc[T any] func(ctx context.Context, mods ...qm.QueryMod) ([]T, error)

// Fetcher implements keyset.Fetcher[T] for SQLBoiler queries.
type Fetcher[T any] struct {
	queryFunc QueryFunc[T]
	opts      []Option
}

// NewFetcher creates a SQLBoiler fetcher. Options control column naming.
//
// Example:
//
//	fetcher := sqlboiler.NewFetcher(
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Exercise, error) {
//	        return models.Exercises(mods...).All(ctx, db)
//	    },
//	    sqlboiler.WithTable("exercise_library"),
//	)
func NewFetcher[T any](queryFunc QueryFunc[T], opts ...Option) keyset.Fetcher[T] {
	return &Fetcher[T]{
		queryFunc: queryFunc,
		opts:      opts,
	}
}

// Fetch renders params into query mods and runs them.
// Rendering errors (an unknown field, an unsupported node) are returned before
// any query is sent; query errors are returned unchanged.
func (f *Fetcher[T]) Fetch(ctx context.Context, params keyset.FetchParams) ([]T, error) {
	mods, err := KeysetToQueryMods(params, f.opts...)
	if err != nil {
		return nil, err
	}
	return f.queryFunc(ctx, mods...)
}
