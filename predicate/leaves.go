package predicate

// Substring returns a substring predicate, or nil when value is absent.
func Substring(field string, value *string) Predicate {
	if value == nil {
		return nil
	}
	return Contains{Field: field, Value: *value}
}

// Enum is a value drawn from a small closed enumeration.
// Valid reports whether the value belongs to the enumeration; String is the
// representation stored in the record.
type Enum interface {
	comparable
	Valid() bool
	String() string
}

// OneOf returns a set-membership predicate over enumeration values.
//
// A nil or empty set means "no constraint" and yields a nil predicate,
// never a predicate that matches nothing. Duplicates are collapsed.
// A value outside the enumeration is rejected with *InvalidValueError.
func OneOf[E Enum](field string, values []E) (Predicate, error) {
	if len(values) == 0 {
		return nil, nil
	}

	seen := make(map[E]struct{}, len(values))
	out := make([]any, 0, len(values))
	for _, v := range values {
		if !v.Valid() {
			return nil, &InvalidValueError{Field: field, Value: v}
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v.String())
	}

	return In{Field: field, Values: out}, nil
}

// AnyOf returns a set-membership predicate over plain values.
// Like OneOf, an empty set yields a nil predicate.
func AnyOf[V comparable](field string, values []V) Predicate {
	if len(values) == 0 {
		return nil
	}

	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return In{Field: field, Values: out}
}

// EqualTo returns an equality predicate, or nil when value is absent.
func EqualTo[V any](field string, value *V) Predicate {
	if value == nil {
		return nil
	}
	return Equal{Field: field, Value: *value}
}

// AtLeast returns Field >= value, or nil when value is absent.
func AtLeast[V any](field string, value *V) Predicate {
	if value == nil {
		return nil
	}
	return Compare{Field: field, Op: GreaterOrEqual, Value: *value}
}

// AtMost returns Field <= value, or nil when value is absent.
func AtMost[V any](field string, value *V) Predicate {
	if value == nil {
		return nil
	}
	return Compare{Field: field, Op: LessOrEqual, Value: *value}
}
