package predicate

import "fmt"

// InvalidValueError is returned when a filter value lies outside its field's enumeration.
type InvalidValueError struct {
	Field string
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for field %s", fmt.Sprint(e.Value), e.Field)
}

// UnknownFieldError is returned by Match when a record does not expose a field
// referenced by the predicate.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %s", e.Field)
}
