package resolver

import (
	"fmt"
	"strings"
)

// NewAmbiguousReferenceError constructs the error from the candidate list,
// preserving candidate order.
func NewAmbiguousReferenceError(name string, candidates []*Symbol) *AmbiguousReferenceError {
	return &AmbiguousReferenceError{
		Name:       name,
		Candidates: candidates,
	}
}

// AmbiguousReferenceError is the error value assigned to a reference when
// the highest tier with any match holds more than one equally-ranked
// candidate.
type AmbiguousReferenceError struct {
	// Name is the referenced name.
	Name string
	// Candidates is the list of equally-ranked symbols, in source order.
	Candidates []*Symbol
}

func (e *AmbiguousReferenceError) Error() string {
	owners := make([]string, len(e.Candidates))
	for i, sym := range e.Candidates {
		owners[i] = sym.Owner()
	}
	return fmt.Sprintf("ambiguous use of %q (candidates: %s)", e.Name, strings.Join(owners, ", "))
}
