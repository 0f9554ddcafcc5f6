// Package predicate builds store-agnostic filter predicates for keyset pagination.
//
// A filter is compiled in two steps. First the caller's sparse filter values are
// turned into a small tree of predicate nodes (this package). Then a store adapter
// renders that tree once into its own query language (see the sqlboiler package)
// or evaluates it in-process (see Match).
//
// Leaves:
//   - Contains: literal substring match on a text column
//   - In: column value is one of an explicit, non-empty set
//   - Equal: column value equals a single value
//   - Compare: column value is >= or <= a bound
//
// Leaves are combined with And. The universal predicate is True.
//
// Example:
//
//	pred, err := predicate.NewBuilder().
//	    Add(predicate.Substring("name", filter.Name)).
//	    Try(predicate.OneOf("grip", filter.Grip)).
//	    Build()
package predicate

// Predicate is a node in a predicate tree.
// The set of node types is closed; store adapters switch over the concrete types.
type Predicate interface {
	isPredicate()
}

// True matches every record. It is the compiled form of an empty filter.
type True struct{}

// And is the conjunction of its terms.
type And struct {
	Terms []Predicate
}

// Contains matches records whose Field contains Value as a literal substring.
// NULL fields never match. The empty string matches every non-NULL field.
type Contains struct {
	Field string
	Value string
}

// In matches records whose Field equals one of Values.
// Values is never empty when built through OneOf or AnyOf.
type In struct {
	Field  string
	Values []any
}

// Equal matches records whose Field equals Value.
type Equal struct {
	Field string
	Value any
}

// Operator is the comparison used by a Compare node.
type Operator string

const (
	GreaterOrEqual Operator = ">="
	LessOrEqual    Operator = "<="
)

// Compare matches records whose Field satisfies Field Op Value.
type Compare struct {
	Field string
	Op    Operator
	Value any
}

func (True) isPredicate()     {}
func (And) isPredicate()      {}
func (Contains) isPredicate() {}
func (In) isPredicate()       {}
func (Equal) isPredicate()    {}
func (Compare) isPredicate()  {}

// Filter is implemented by per-entity filter specs.
// Compile turns the sparse set of optional filter values into a predicate tree.
type Filter interface {
	Compile() (Predicate, error)
}

// Compile compiles f, treating a nil filter as "no filtering".
// The result is never nil.
func Compile(f Filter) (Predicate, error) {
	if f == nil {
		return True{}, nil
	}

	pred, err := f.Compile()
	if err != nil {
		return nil, err
	}

	if pred == nil {
		return True{}, nil
	}
	return pred, nil
}

// IsTrue reports whether p imposes no constraint.
func IsTrue(p Predicate) bool {
	switch n := p.(type) {
	case nil, True:
		return true
	case And:
		for _, t := range n.Terms {
			if !IsTrue(t) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// All returns the conjunction of terms.
// Nil and True terms are dropped and nested And nodes are flattened.
// With no remaining terms the result is True; with one, that term itself.
func All(terms ...Predicate) Predicate {
	flat := make([]Predicate, 0, len(terms))
	for _, t := range terms {
		switch n := t.(type) {
		case nil, True:
			continue
		case And:
			inner := All(n.Terms...)
			if and, ok := inner.(And); ok {
				flat = append(flat, and.Terms...)
			} else if !IsTrue(inner) {
				flat = append(flat, inner)
			}
		default:
			flat = append(flat, t)
		}
	}

	switch len(flat) {
	case 0:
		return True{}
	case 1:
		return flat[0]
	default:
		return And{Terms: flat}
	}
}
