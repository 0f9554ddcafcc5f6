package sqlboiler

import (
	"fmt"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
)

// KeysetToQueryMods converts FetchParams into SQLBoiler query mods.
//
// The conversion follows these rules:
//   - Predicate → one WHERE mod per conjunct (nothing for predicate.True)
//   - Bound     → qm.Where("id > ?") or qm.Where("id < ?")
//   - Order     → qm.OrderBy("id ASC") or qm.OrderBy("id DESC")
//   - Limit     → qm.Limit(n)
//
// Mods are returned in that order. Values are always bound as arguments,
// never interpolated.
func KeysetToQueryMods(params keyset.FetchParams, opts ...Option) ([]qm.QueryMod, error) {
	r := newRenderer(opts)

	mods, err := r.where(params.Predicate)
	if err != nil {
		return nil, err
	}

	id := r.quote(r.idColumn)

	if params.Bound != nil {
		op := params.Bound.Op
		if op != keyset.GreaterThan && op != keyset.LessThan {
			return nil, errors.Errorf("sqlboiler: unsupported bound operator %q", op)
		}
		mods = append(mods, qm.Where(fmt.Sprintf("%s %s ?", id, op), params.Bound.ID))
	}

	mods = append(mods, qm.OrderBy(buildOrderByClause(id, params.Order)))

	if params.Limit > 0 {
		mods = append(mods, qm.Limit(params.Limit))
	}

	return mods, nil
}

func buildOrderByClause(column string, order keyset.Order) string {
	return column + " " + order.String()
}

// where renders a predicate into WHERE mods, one per conjunct.
// SQLBoiler joins consecutive WHERE mods with AND.
func (r *renderer) where(p predicate.Predicate) ([]qm.QueryMod, error) {
	switch node := p.(type) {
	case nil, predicate.True:
		return nil, nil

	case predicate.And:
		var mods []qm.QueryMod
		for _, term := range node.Terms {
			termMods, err := r.where(term)
			if err != nil {
				return nil, err
			}
			mods = append(mods, termMods...)
		}
		return mods, nil

	case predicate.Contains:
		col, err := r.column(node.Field)
		if err != nil {
			return nil, err
		}
		clause := fmt.Sprintf("%s LIKE ? ESCAPE '%s'", col, predicate.LikeEscape)
		return []qm.QueryMod{rawWhereClause(clause, []any{predicate.ContainsPattern(node.Value)})}, nil

	case predicate.In:
		col, err := r.column(node.Field)
		if err != nil {
			return nil, err
		}
		if len(node.Values) == 0 {
			return nil, nil
		}
		return []qm.QueryMod{qm.WhereIn(col+" IN ?", node.Values...)}, nil

	case predicate.Equal:
		col, err := r.column(node.Field)
		if err != nil {
			return nil, err
		}
		if node.Value == nil {
			return []qm.QueryMod{qm.Where(col + " IS NULL")}, nil
		}
		return []qm.QueryMod{qm.Where(col+" = ?", node.Value)}, nil

	case predicate.Compare:
		col, err := r.column(node.Field)
		if err != nil {
			return nil, err
		}
		if node.Op != predicate.GreaterOrEqual && node.Op != predicate.LessOrEqual {
			return nil, errors.Errorf("sqlboiler: unsupported operator %q on %s", node.Op, node.Field)
		}
		return []qm.QueryMod{qm.Where(fmt.Sprintf("%s %s ?", col, node.Op), node.Value)}, nil

	default:
		return nil, errors.Errorf("sqlboiler: unsupported predicate %T", p)
	}
}

func (r *renderer) column(field string) (string, error) {
	if r.columns == nil {
		return r.quote(field), nil
	}
	col, ok := r.columns[field]
	if !ok {
		return "", &predicate.UnknownFieldError{Field: field}
	}
	return r.quote(col), nil
}

// rawWhereClause creates a custom query mod that appends clause to the
// query's WHERE buffer as-is, together with its arguments.
func rawWhereClause(clause string, args []any) qm.QueryMod {
	return qm.QueryModFunc(func(q *queries.Query) {
		queries.AppendWhere(q, clause, args...)
	})
}
