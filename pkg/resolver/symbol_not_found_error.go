package resolver

import "fmt"

// SymbolNotFoundError is returned when a single-symbol import or qualified
// reference names a declaration its module does not provide.
type SymbolNotFoundError struct {
	// Module is the dotted path of the module searched.
	Module string
	// Kind is the requested kind, NoKind when the request was not
	// kind-qualified.
	Kind SymbolKind
	// Name is the missing declaration name.
	Name string
}

func (e *SymbolNotFoundError) Error() string {
	if e.Kind == NoKind {
		return fmt.Sprintf("module %q provides no declaration named %q", e.Module, e.Name)
	}
	return fmt.Sprintf("module %q provides no %v named %q", e.Module, e.Kind, e.Name)
}
