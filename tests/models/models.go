// Package models is a trimmed stand-in for sqlboiler-generated code, used by
// the integration suite to drive sqlboiler.NewFetcher the way an application
// with generated models would.
package models

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"

	"github.com/nrfta/keyset-go/fitness"
)

var dialect = drivers.Dialect{
	LQ:                   '"',
	RQ:                   '"',
	UseIndexPlaceholders: true,
	UseSchema:            false,
	UseDefaultKeyword:    true,
}

// NewQuery initializes a new Query using the passed in QueryMods.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)

	return q
}

type logGroupQuery struct {
	*queries.Query
}

// LogGroups retrieves all the records using an executor.
func LogGroups(mods ...qm.QueryMod) logGroupQuery {
	mods = append(mods, qm.From("\"workout_log_groups\""))
	q := NewQuery(mods...)
	if len(queries.GetSelect(q)) == 0 {
		queries.SetSelect(q, []string{"\"workout_log_groups\".*"})
	}

	return logGroupQuery{q}
}

// All returns all LogGroup records from the query.
func (q logGroupQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*fitness.LogGroup, error) {
	var o []*fitness.LogGroup

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "models: failed to assign all query results to LogGroup slice")
	}

	return o, nil
}

// Count returns the count of all LogGroup records in the query.
func (q logGroupQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "models: failed to count workout_log_groups rows")
	}

	return count, nil
}
