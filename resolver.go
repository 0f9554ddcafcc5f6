package keyset

import "github.com/nrfta/keyset-go/predicate"

// BuildFetchParams creates FetchParams with the N+1 pattern for accurate has-more detection.
//
// Forward requests order ascending and, with a cursor, bound id > cursor.
// Backward requests order descending and, with a cursor, bound id < cursor.
// Without a cursor there is no bound and the store starts from the respective
// end of the order. params must already be validated.
func BuildFetchParams(pred predicate.Predicate, params Params) FetchParams {
	if pred == nil {
		pred = predicate.True{}
	}

	fp := FetchParams{
		Predicate: pred,
		Order:     Ascending,
		Limit:     params.Limit + 1,
	}

	op := GreaterThan
	if params.Direction == Backward {
		fp.Order = Descending
		op = LessThan
	}

	if params.Cursor != nil {
		fp.Bound = &Bound{Op: op, ID: *params.Cursor}
	}

	return fp
}

// Resolve turns the over-fetched window returned by a store into a Page.
//
// rows must be in the order requested by BuildFetchParams (ascending for Forward,
// descending for Backward). Resolve:
//  1. detects has-more (len(rows) > limit) and drops the extra row
//  2. reverses Backward windows so Items are ascending
//  3. derives the cursors:
//     Forward:  next = last id if has-more; prev = first id if a cursor was supplied
//     Backward: next = last id when the page is non-empty; prev = first id if has-more
//
// A backward page always has a next page because backward paging only starts
// from a point that had a forward continuation. A forward page has a previous
// page only when the caller was not already at the start.
//
// The caller's slice is left untouched.
func Resolve[T Record](params Params, rows []T) *Page[T] {
	limit := params.Limit
	if limit < 0 {
		limit = 0
	}

	hasMore := len(rows) > limit
	n := len(rows)
	if hasMore {
		n = limit
	}

	items := make([]T, n)
	if params.Direction == Backward {
		for i := 0; i < n; i++ {
			items[i] = rows[n-1-i]
		}
	} else {
		copy(items, rows[:n])
	}

	var startID, endID *int64
	if n > 0 {
		first, last := items[0].GetID(), items[n-1].GetID()
		startID, endID = &first, &last
	}

	page := &Page[T]{
		Items: items,
		Metadata: Metadata{
			Strategy:      strategyKeyset,
			Direction:     params.Direction,
			Limit:         params.Limit,
			ItemsExamined: len(rows),
			HasMore:       hasMore,
		},
	}

	switch params.Direction {
	case Backward:
		page.NextCursor = endID
		if hasMore {
			page.PrevCursor = startID
		}
	default:
		if hasMore {
			page.NextCursor = endID
		}
		if params.Cursor != nil {
			page.PrevCursor = startID
		}
	}

	return page
}
