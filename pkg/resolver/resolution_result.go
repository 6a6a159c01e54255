package resolver

import "fmt"

// ResolutionResult is the outcome of resolving a single reference: exactly
// one symbol, or an error value.  Errors are recoverable diagnostics; the
// engine keeps resolving subsequent references in the unit.
type ResolutionResult struct {
	// Ref is the reference that was resolved.
	Ref *Reference
	// Symbol is the resolved declaration, nil on error.
	Symbol *Symbol
	// Err is the resolution failure, nil on success.
	Err error
}

// Resolved constructs a successful result.
func Resolved(ref *Reference, sym *Symbol) ResolutionResult {
	return ResolutionResult{Ref: ref, Symbol: sym}
}

// Failed constructs an error result.
func Failed(ref *Reference, err error) ResolutionResult {
	return ResolutionResult{Ref: ref, Err: err}
}

// IsResolved returns true if the reference bound to exactly one symbol.
func (r ResolutionResult) IsResolved() bool {
	return r.Err == nil
}

// String implements fmt.Stringer
func (r ResolutionResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s: %v", r.Ref, r.Err)
	}
	return fmt.Sprintf("%s -> %v", r.Ref, r.Symbol)
}
