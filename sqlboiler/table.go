package sqlboiler

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/aarondl/strmangle"

	"github.com/nrfta/keyset-go"
)

// PostgresDialect renders $1-style placeholders and double-quoted identifiers.
var PostgresDialect = drivers.Dialect{
	LQ:                   '"',
	RQ:                   '"',
	UseIndexPlaceholders: true,
	UseLastInsertID:      false,
	UseSchema:            true,
	UseDefaultKeyword:    true,
}

// SQLiteDialect renders ?-style placeholders and double-quoted identifiers.
var SQLiteDialect = drivers.Dialect{
	LQ:                '"',
	RQ:                '"',
	UseLastInsertID:   true,
	UseDefaultKeyword: true,
}

// TableFetcher fetches rows of one table and binds them into T with SQLBoiler's
// reflection binder, so any struct with boil tags works without generated code.
type TableFetcher[T any] struct {
	exec    boil.ContextExecutor
	dialect drivers.Dialect
	table   string
	opts    []Option
}

// NewTableFetcher creates a fetcher selecting from table.
//
// T is usually a pointer to a struct whose fields carry `boil:"column"` tags.
func NewTableFetcher[T any](exec boil.ContextExecutor, dialect drivers.Dialect, table string, opts ...Option) *TableFetcher[T] {
	quotes := WithQuotes(dialect.LQ, dialect.RQ)
	return &TableFetcher[T]{
		exec:    exec,
		dialect: dialect,
		table:   table,
		opts:    append([]Option{quotes}, opts...),
	}
}

// Query builds the SELECT for params without running it.
func (f *TableFetcher[T]) Query(params keyset.FetchParams) (*queries.Query, error) {
	mods, err := KeysetToQueryMods(params, f.opts...)
	if err != nil {
		return nil, err
	}

	q := &queries.Query{}
	queries.SetDialect(q, &f.dialect)
	qm.Apply(q, append([]qm.QueryMod{qm.From(strmangle.IdentQuote(f.dialect.LQ, f.dialect.RQ, f.table))}, mods...)...)

	return q, nil
}

// Fetch implements keyset.Fetcher.
func (f *TableFetcher[T]) Fetch(ctx context.Context, params keyset.FetchParams) ([]T, error) {
	q, err := f.Query(params)
	if err != nil {
		return nil, err
	}

	rows := []T{}
	if err := q.Bind(ctx, f.exec, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
