package resolver

import "fmt"

// MemberNotFoundError is returned when a qualified reference lands on a
// declaration (rather than a module) that does not provide the member.
type MemberNotFoundError struct {
	// Symbol is the declaration that shadowed the qualifier.
	Symbol *Symbol
	// Name is the missing member name.
	Name string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("%v %q has no member %q", e.Symbol.Kind, e.Symbol.Name, e.Name)
}
