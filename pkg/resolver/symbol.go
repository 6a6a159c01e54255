package resolver

import "fmt"

// Symbol associates a declared name with the module that owns it, along with a
// kind classifier that says what sort of declaration it is.
type Symbol struct {
	// Kind is the kind of declaration this is.
	Kind SymbolKind
	// Name is the declared name.
	Name string
	// Module is the dotted path of the owning module.  Empty for symbols
	// declared directly in a compilation unit.
	Module string
	// Signature is an opaque payload carried through from the front end.
	Signature string
	// Members are the nested declarations addressable through this symbol
	// (enum cases, nested funcs).  Only populated for type-kind symbols.
	Members []*Symbol
}

// NewSymbol constructs a new symbol pointer with the given arguments.
func NewSymbol(kind SymbolKind, name, module string) *Symbol {
	return &Symbol{
		Kind:   kind,
		Name:   name,
		Module: module,
	}
}

// Owner returns the name of the owning module, or "local" for a symbol
// declared in the compilation unit itself.
func (s *Symbol) Owner() string {
	if s.Module == "" {
		return "local"
	}
	return s.Module
}

// Member returns the named nested declaration, if any.
func (s *Symbol) Member(name string) (*Symbol, bool) {
	for _, member := range s.Members {
		if member.Name == name {
			return member, true
		}
	}
	return nil, false
}

// String implements fmt.Stringer
func (s *Symbol) String() string {
	return fmt.Sprintf("(%s<%v> %s)", s.Name, s.Kind, s.Owner())
}
