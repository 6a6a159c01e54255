package resolver

import "fmt"

// DuplicateSymbolError is returned when a module declares two symbols with
// the same kind and name.
type DuplicateSymbolError struct {
	// Module is the dotted path of the module being assembled.
	Module string
	// Kind is the kind of the colliding declaration.
	Kind SymbolKind
	// Name is the colliding name.
	Name string
}

func (e *DuplicateSymbolError) Error() string {
	return fmt.Sprintf("module %q already declares %v %q", e.Module, e.Kind, e.Name)
}
