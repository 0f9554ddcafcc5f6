package keyset

import "github.com/friendsofgo/errors"

// Connection represents a Relay-style connection over one keyset page.
// It provides both edges (with cursors) and nodes (direct access) to support
// different query patterns.
//
// Type parameter T is the domain model type.
type Connection[T any] struct {
	// Edges contains the list of edges, each with a cursor and node.
	Edges []Edge[T] `json:"edges"`

	// Nodes provides direct access to the items without cursor overhead.
	Nodes []T `json:"nodes"`

	// PageInfo contains navigation metadata.
	PageInfo PageInfo `json:"-"`
}

// Edge pairs a node with the opaque cursor of its id.
type Edge[T any] struct {
	// Cursor resumes pagination right after (Forward) or before (Backward) this node.
	Cursor string `json:"cursor"`

	// Node is the actual data item.
	Node T `json:"node"`
}

// BuildConnection creates a Connection from a page.
// Each edge cursor is EncodeCursor of the source record's id, and transform
// converts store records into the type exposed to clients.
//
// Example usage:
//
//	conn, err := keyset.BuildConnection(page, func(w *fitness.Workout) (*api.Workout, error) {
//	    return toAPIWorkout(w), nil
//	})
func BuildConnection[From Record, To any](page *Page[From], transform func(From) (To, error)) (*Connection[To], error) {
	if page == nil {
		return &Connection[To]{
			Edges:    []Edge[To]{},
			Nodes:    []To{},
			PageInfo: *NewEmptyPageInfo(),
		}, nil
	}

	conn := &Connection[To]{
		Nodes:    make([]To, 0, len(page.Items)),
		Edges:    make([]Edge[To], 0, len(page.Items)),
		PageInfo: NewPageInfo(page),
	}

	for i, item := range page.Items {
		transformed, err := transform(item)
		if err != nil {
			return nil, errors.Wrapf(err, "transform item at index %d", i)
		}

		conn.Nodes = append(conn.Nodes, transformed)
		conn.Edges = append(conn.Edges, Edge[To]{
			Cursor: EncodeCursor(item.GetID()),
			Node:   transformed,
		})
	}

	return conn, nil
}
