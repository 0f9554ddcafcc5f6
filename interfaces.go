package keyset

import (
	"context"

	"github.com/nrfta/keyset-go/predicate"
)

// Record is any entity persisted in an ordered collection.
//
// GetID returns a stable, store-assigned identifier. Identifiers are strictly
// ordered, never reused and never renumbered; they are the keyset ordering key.
type Record interface {
	GetID() int64
}

// FieldRecord is a Record whose fields can be read by name, which lets stores
// without a query language evaluate predicates themselves with predicate.Match.
type FieldRecord interface {
	Record
	predicate.Fields
}

// Fetcher abstracts the ordered, keyed record store.
// This interface allows paginators to work with SQLBoiler, an embedded KV store,
// an in-memory slice or anything else able to return records ordered by id.
//
// Type parameter T is the record type (e.g., *models.Exercise).
//
// Implementations must:
//   - evaluate params.Predicate themselves (no client-side post-filtering)
//   - apply params.Bound only when it is non-nil
//   - order by id in params.Order
//   - return at most params.Limit records
//
// Store errors are returned as-is. Retry policy belongs to whoever owns the
// store connection, not to the paginator.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, params FetchParams) ([]T, error)
}

// FetchFunc adapts a plain function to the Fetcher interface.
//
// Example:
//
//	fetcher := keyset.FetchFunc[*models.Workout](func(ctx context.Context, p keyset.FetchParams) ([]*models.Workout, error) {
//	    return models.Workouts(sqlboiler.KeysetToQueryMods(p)...).All(ctx, db)
//	})
type FetchFunc[T any] func(ctx context.Context, params FetchParams) ([]T, error)

// Fetch calls f.
func (f FetchFunc[T]) Fetch(ctx context.Context, params FetchParams) ([]T, error) {
	return f(ctx, params)
}

// Order is the id ordering requested from the store.
type Order int

const (
	// Ascending walks ids upwards; Forward requests use it.
	Ascending Order = iota
	// Descending walks ids downwards; Backward requests use it.
	Descending
)

// String returns "ASC" or "DESC".
func (o Order) String() string {
	if o == Descending {
		return "DESC"
	}
	return "ASC"
}

// Operator is the comparison applied between the id column and a cursor.
type Operator string

const (
	GreaterThan Operator = ">"
	LessThan    Operator = "<"
)

// Bound restricts ids to one side of a cursor, exclusively.
type Bound struct {
	Op Operator
	ID int64
}

// Includes reports whether id lies on the requested side of the bound.
func (b *Bound) Includes(id int64) bool {
	if b == nil {
		return true
	}
	if b.Op == LessThan {
		return id < b.ID
	}
	return id > b.ID
}

// FetchParams contains everything a store needs to return one page window.
// Paginators construct these with BuildFetchParams.
type FetchParams struct {
	// Predicate is the compiled filter. It is never nil; True means no filtering.
	Predicate predicate.Predicate

	// Order is Ascending for Forward requests and Descending for Backward ones.
	Order Order

	// Bound is the exclusive cursor boundary, nil when the request has no cursor.
	Bound *Bound

	// Limit is the number of rows to fetch: the page size plus one.
	Limit int
}

// Observer receives one notification per page request.
// The metrics package provides a Prometheus implementation.
type Observer interface {
	// PageFetched is called after a page has been fetched and resolved.
	PageFetched(meta Metadata)

	// FetchFailed is called when the store returns an error.
	FetchFailed(direction Direction, err error)
}

type noopObserver struct{}

func (noopObserver) PageFetched(Metadata)         {}
func (noopObserver) FetchFailed(Direction, error) {}
