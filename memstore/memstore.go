// Package memstore is an in-memory ordered record store implementing keyset.Fetcher.
//
// It backs tests and small datasets, and serves as the reference behavior
// for the database-backed fetchers.
package memstore

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
)

// Store keeps records sorted by id.
type Store[T keyset.FieldRecord] struct {
	mu     sync.RWMutex
	items  []T
	lastID int64
}

// New creates a Store holding records.
func New[T keyset.FieldRecord](records ...T) *Store[T] {
	s := &Store[T]{}
	for _, r := range records {
		s.Put(r)
	}
	return s
}

// NextID reserves the next id, one past the highest id ever stored.
// Ids handed out this way are never reused, even after Delete.
func (s *Store[T]) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID
}

// Put inserts record, replacing any record with the same id.
func (s *Store[T]) Put(record T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := record.GetID()
	if id > s.lastID {
		s.lastID = id
	}

	i := s.search(id)
	if i < len(s.items) && s.items[i].GetID() == id {
		s.items[i] = record
		return
	}

	var zero T
	s.items = append(s.items, zero)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = record
}

// Get returns the record with id.
func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.search(id)
	if i < len(s.items) && s.items[i].GetID() == id {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Delete removes the record with id and reports whether it existed.
func (s *Store[T]) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.search(id)
	if i >= len(s.items) || s.items[i].GetID() != id {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return true
}

// Len returns the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Fetch implements keyset.Fetcher.
func (s *Store[T]) Fetch(ctx context.Context, params keyset.FetchParams) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if params.Limit <= 0 {
		return []T{}, nil
	}
	out := make([]T, 0, min(params.Limit, len(s.items)))

	visit := func(r T) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if !params.Bound.Includes(r.GetID()) {
			return true, nil
		}
		ok, err := predicate.Match(params.Predicate, r)
		if err != nil {
			return false, err
		}
		if ok {
			out = append(out, r)
		}
		return len(out) < params.Limit, nil
	}

	if params.Order == keyset.Descending {
		end := len(s.items)
		if params.Bound != nil && params.Bound.Op == keyset.LessThan {
			end = s.search(params.Bound.ID)
		}
		for i := end - 1; i >= 0; i-- {
			more, err := visit(s.items[i])
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
		return out, nil
	}

	start := 0
	if params.Bound != nil && params.Bound.Op == keyset.GreaterThan && params.Bound.ID < math.MaxInt64 {
		start = s.search(params.Bound.ID + 1)
	}
	for i := start; i < len(s.items); i++ {
		more, err := visit(s.items[i])
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
	}
	return out, nil
}

// search returns the index of the first record with an id >= id.
func (s *Store[T]) search(id int64) int {
	return sort.Search(len(s.items), func(i int) bool {
		return s.items[i].GetID() >= id
	})
}
