package predicate

// Builder accumulates predicate terms and the first error raised while
// producing them, so filter compilation reads as a single chain.
type Builder struct {
	terms []Predicate
	err   error
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a term. Nil terms are ignored.
func (b *Builder) Add(p Predicate) *Builder {
	if p != nil {
		b.terms = append(b.terms, p)
	}
	return b
}

// Try appends a term produced by a constructor that can fail.
// Once an error has been recorded every later term is ignored.
func (b *Builder) Try(p Predicate, err error) *Builder {
	if b.err != nil {
		return b
	}
	if err != nil {
		b.err = err
		return b
	}
	return b.Add(p)
}

// Build returns the conjunction of all terms, or the first recorded error.
func (b *Builder) Build() (Predicate, error) {
	if b.err != nil {
		return nil, b.err
	}
	return All(b.terms...), nil
}
