package keyset

import "github.com/nrfta/keyset-go/predicate"

// Unfiltered is the filter of a collection without filter fields.
type Unfiltered struct{}

// Compile returns predicate.True.
func (Unfiltered) Compile() (predicate.Predicate, error) {
	return predicate.True{}, nil
}
