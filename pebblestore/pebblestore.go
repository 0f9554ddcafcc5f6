// Package pebblestore keeps records in a Pebble key-value store and pages
// through them by id with bounded iterators.
//
// Keys are the collection prefix followed by the 8-byte big-endian id, so
// Pebble's byte order is id order. The prefix is the uvarint length of the
// collection name followed by the name, so no collection's key range overlaps
// another's. Values are JSON. Predicates are evaluated while
// iterating, inside the store, before a row counts against the limit.
package pebblestore

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"os"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/friendsofgo/errors"

	"github.com/nrfta/keyset-go"
	"github.com/nrfta/keyset-go/predicate"
)

// ErrNegativeID is returned by Put for ids below zero, which would break the
// byte ordering of keys.
var ErrNegativeID = errors.New("pebblestore: negative id")

// DB is an open Pebble database shared by one or more collections.
type DB struct {
	db *pebble.DB
}

// Open opens (creating if needed) a Pebble database in dir.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble at %s", dir)
	}
	return &DB{db: db}, nil
}

// OpenInMemory opens a Pebble database backed by an in-memory filesystem.
func OpenInMemory() (*DB, error) {
	db, err := pebble.Open("", &pebble.Options{FS: vfs.NewMem()})
	if err != nil {
		return nil, errors.Wrap(err, "open in-memory pebble")
	}
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Collection is one record type stored under a key prefix.
type Collection[T keyset.FieldRecord] struct {
	db     *pebble.DB
	prefix []byte
}

// NewCollection returns the collection of T stored under name.
// Two collections with the same name share keys.
func NewCollection[T keyset.FieldRecord](d *DB, name string) *Collection[T] {
	prefix := binary.AppendUvarint(nil, uint64(len(name)))
	prefix = append(prefix, name...)
	return &Collection[T]{
		db:     d.db,
		prefix: prefix,
	}
}

func (c *Collection[T]) key(id int64) []byte {
	k := make([]byte, len(c.prefix)+8)
	copy(k, c.prefix)
	binary.BigEndian.PutUint64(k[len(c.prefix):], uint64(id))
	return k
}

// upperBound is the smallest key greater than every key with the prefix.
// nil means unbounded.
func (c *Collection[T]) upperBound() []byte {
	end := make([]byte, len(c.prefix))
	copy(end, c.prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}

// Put stores record under its id, replacing any previous value.
func (c *Collection[T]) Put(record T) error {
	id := record.GetID()
	if id < 0 {
		return errors.Wrapf(ErrNegativeID, "%d", id)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "encode record %d", id)
	}
	return c.db.Set(c.key(id), data, pebble.Sync)
}

// Get loads the record with id. The second result is false when it does not exist.
func (c *Collection[T]) Get(id int64) (T, bool, error) {
	var zero T
	if id < 0 {
		return zero, false, nil
	}

	v, closer, err := c.db.Get(c.key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	defer closer.Close()

	record, err := c.decode(v)
	if err != nil {
		return zero, false, err
	}
	return record, true, nil
}

// Delete removes the record with id. Deleting a missing id is not an error.
func (c *Collection[T]) Delete(id int64) error {
	if id < 0 {
		return nil
	}
	return c.db.Delete(c.key(id), pebble.Sync)
}

// LastID returns the highest stored id, or 0 for an empty collection.
func (c *Collection[T]) LastID() (int64, error) {
	it, err := c.db.NewIter(&pebble.IterOptions{
		LowerBound: c.prefix,
		UpperBound: c.upperBound(),
	})
	if err != nil {
		return 0, err
	}
	defer it.Close()

	if !it.Last() {
		return 0, it.Error()
	}
	return c.id(it.Key()), nil
}

// Fetch implements keyset.Fetcher.
func (c *Collection[T]) Fetch(ctx context.Context, params keyset.FetchParams) ([]T, error) {
	out := []T{}
	if params.Limit <= 0 {
		return out, nil
	}

	opts := &pebble.IterOptions{
		LowerBound: c.prefix,
		UpperBound: c.upperBound(),
	}
	if b := params.Bound; b != nil {
		switch {
		case b.Op == keyset.GreaterThan && b.ID < 0:
		case b.Op == keyset.GreaterThan:
			// Exclusive: start right after the cursor key.
			opts.LowerBound = append(c.key(b.ID), 0)
		case b.Op == keyset.LessThan && b.ID <= 0:
			return out, nil
		case b.Op == keyset.LessThan:
			opts.UpperBound = c.key(b.ID)
		default:
			return nil, errors.Errorf("pebblestore: unsupported bound operator %q", b.Op)
		}
	}

	it, err := c.db.NewIter(opts)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	first, next := it.First, it.Next
	if params.Order == keyset.Descending {
		first, next = it.Last, it.Prev
	}

	for ok := first(); ok; ok = next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := c.decode(it.Value())
		if err != nil {
			return nil, errors.Wrapf(err, "decode record %d", c.id(it.Key()))
		}

		match, err := predicate.Match(params.Predicate, record)
		if err != nil {
			return nil, err
		}
		if !match {
			continue
		}

		out = append(out, record)
		if len(out) == params.Limit {
			break
		}
	}

	if err := it.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Collection[T]) id(key []byte) int64 {
	return int64(binary.BigEndian.Uint64(key[len(c.prefix):]))
}

func (c *Collection[T]) decode(data []byte) (T, error) {
	var record T
	err := json.Unmarshal(data, &record)
	return record, err
}
