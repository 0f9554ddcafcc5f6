package predicate

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/friendsofgo/errors"
)

// Fields exposes a record's column values to the in-process evaluator.
// A NULL column is reported as (nil, true); an unknown column as (nil, false).
type Fields interface {
	Field(name string) (any, bool)
}

// Match evaluates p against a record the way a SQL store would:
// NULL never satisfies a leaf, And requires every term and True always holds.
func Match(p Predicate, rec Fields) (bool, error) {
	switch n := p.(type) {
	case nil, True:
		return true, nil

	case And:
		for _, t := range n.Terms {
			ok, err := Match(t, rec)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil

	case Contains:
		v, err := lookup(rec, n.Field)
		if err != nil || v == nil {
			return false, err
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprint(v)
		}
		return strings.Contains(s, n.Value), nil

	case In:
		v, err := lookup(rec, n.Field)
		if err != nil || v == nil {
			return false, err
		}
		for _, candidate := range n.Values {
			if equal(v, candidate) {
				return true, nil
			}
		}
		return false, nil

	case Equal:
		v, err := lookup(rec, n.Field)
		if err != nil || v == nil {
			return false, err
		}
		return equal(v, n.Value), nil

	case Compare:
		v, err := lookup(rec, n.Field)
		if err != nil || v == nil {
			return false, err
		}
		c, ok := compare(v, n.Value)
		if !ok {
			return false, errors.Errorf("cannot compare field %s (%T) with %T", n.Field, v, n.Value)
		}
		if n.Op == GreaterOrEqual {
			return c >= 0, nil
		}
		return c <= 0, nil

	default:
		return false, errors.Errorf("unsupported predicate %T", p)
	}
}

func lookup(rec Fields, field string) (any, error) {
	v, ok := rec.Field(field)
	if !ok {
		return nil, &UnknownFieldError{Field: field}
	}
	return v, nil
}

func equal(a, b any) bool {
	if c, ok := compare(a, b); ok {
		return c == 0
	}
	return reflect.DeepEqual(a, b)
}

// compare orders two scalar values of compatible kinds.
// Named string and integer types compare by their underlying kind.
func compare(a, b any) (int, bool) {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		if !ok {
			return 0, false
		}
		return at.Compare(bt), true
	}

	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	switch {
	case isString(av) && isString(bv):
		return strings.Compare(av.String(), bv.String()), true

	case isBool(av) && isBool(bv):
		if av.Bool() == bv.Bool() {
			return 0, true
		}
		if !av.Bool() {
			return -1, true
		}
		return 1, true

	case isNumber(av) && isNumber(bv):
		x, y := toFloat(av), toFloat(bv)
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		default:
			return 0, true
		}
	}

	return 0, false
}

func isString(v reflect.Value) bool { return v.Kind() == reflect.String }
func isBool(v reflect.Value) bool   { return v.Kind() == reflect.Bool }

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}
