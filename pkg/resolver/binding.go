package resolver

import "fmt"

// Tier is one of the three precedence levels consulted in order during
// resolution.
type Tier int

const (
	// TierLocal is a declaration in the compilation unit itself.
	TierLocal Tier = iota
	// TierImportedDeclaration is a single-symbol import.
	TierImportedDeclaration
	// TierImportedModule is a whole-module or submodule import.
	TierImportedModule
)

// String implements fmt.Stringer
func (t Tier) String() string {
	switch t {
	case TierLocal:
		return "local"
	case TierImportedDeclaration:
		return "imported-declaration"
	case TierImportedModule:
		return "imported-module"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// Binding associates a name with one symbol at a given tier.  Bindings are
// derived from import declarations and are recomputed whenever the import
// list changes; they are never persisted.
type Binding struct {
	// Symbol is the bound declaration.
	Symbol *Symbol
	// Tier is the precedence level of the binding.
	Tier Tier
	// Order is the source order index of the contributing import
	// declaration.  Later single-symbol imports of the same name shadow
	// earlier ones.
	Order int
	// Decl is the contributing import declaration, nil for local bindings.
	Decl *ImportDeclaration
}

// String implements fmt.Stringer
func (b *Binding) String() string {
	return fmt.Sprintf("%v %v#%d", b.Symbol, b.Tier, b.Order)
}
