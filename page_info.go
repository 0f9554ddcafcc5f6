package keyset

// PageInfo contains metadata about a paginated result set.
// It uses function fields to enable lazy evaluation, matching GraphQL resolvers
// that call each field independently.
//
// Keyset pages never count the whole result set, so there is no TotalCount.
type PageInfo struct {
	HasPreviousPage func() (bool, error)
	HasNextPage     func() (bool, error)
	StartCursor     func() (*string, error)
	EndCursor       func() (*string, error)
}

// NewPageInfo returns a PageInfo describing page.
// StartCursor and EndCursor are the opaque forms of PrevCursor and NextCursor,
// ready to be sent back as "before" and "after" arguments.
func NewPageInfo[T any](page *Page[T]) PageInfo {
	if page == nil {
		return *NewEmptyPageInfo()
	}

	prev := EncodeCursorPtr(page.PrevCursor)
	next := EncodeCursorPtr(page.NextCursor)

	return PageInfo{
		HasPreviousPage: func() (bool, error) { return prev != nil, nil },
		HasNextPage:     func() (bool, error) { return next != nil, nil },
		StartCursor:     func() (*string, error) { return prev, nil },
		EndCursor:       func() (*string, error) { return next, nil },
	}
}

// NewEmptyPageInfo returns an empty instance of PageInfo.
func NewEmptyPageInfo() *PageInfo {
	return &PageInfo{
		HasPreviousPage: func() (bool, error) { return false, nil },
		HasNextPage:     func() (bool, error) { return false, nil },
		StartCursor:     func() (*string, error) { return nil, nil },
		EndCursor:       func() (*string, error) { return nil, nil },
	}
}
