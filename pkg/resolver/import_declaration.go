package resolver

import "fmt"

// ImportForm discriminates the three import declaration forms.  The set of
// forms is closed and is matched exhaustively during table building.
type ImportForm int

const (
	// WholeModuleImport is "import Pentathlon".
	WholeModuleImport ImportForm = iota
	// SingleSymbolImport is "import func Pentathlon.swim".
	SingleSymbolImport
	// SubmoduleImport is "import Triathlon.Swim".
	SubmoduleImport
)

// String implements fmt.Stringer
func (f ImportForm) String() string {
	switch f {
	case WholeModuleImport:
		return "whole-module"
	case SingleSymbolImport:
		return "single-symbol"
	case SubmoduleImport:
		return "submodule"
	}
	return fmt.Sprintf("ImportForm(%d)", int(f))
}

// ImportDeclaration is one import as written in source, in one of the three
// forms.  Declarations are ordered as written; order drives same-tier
// shadowing.
type ImportDeclaration struct {
	// Form is the declaration form.
	Form ImportForm
	// Module is the imported module name.
	Module string
	// Kind is the declaration kind of a single-symbol import.
	Kind SymbolKind
	// Symbol is the declaration name of a single-symbol import.
	Symbol string
	// Submodule is the submodule name of a submodule import.
	Submodule string
}

// NewWholeModuleImport creates an "import Module" declaration.
func NewWholeModuleImport(module string) *ImportDeclaration {
	return &ImportDeclaration{
		Form:   WholeModuleImport,
		Module: module,
	}
}

// NewSingleSymbolImport creates an "import kind Module.symbol" declaration.
func NewSingleSymbolImport(module string, kind SymbolKind, symbol string) *ImportDeclaration {
	return &ImportDeclaration{
		Form:   SingleSymbolImport,
		Module: module,
		Kind:   kind,
		Symbol: symbol,
	}
}

// NewSubmoduleImport creates an "import Module.Submodule" declaration.
func NewSubmoduleImport(module, submodule string) *ImportDeclaration {
	return &ImportDeclaration{
		Form:      SubmoduleImport,
		Module:    module,
		Submodule: submodule,
	}
}

// String renders the declaration as it would appear in source.
func (d *ImportDeclaration) String() string {
	switch d.Form {
	case SingleSymbolImport:
		return fmt.Sprintf("import %v %s.%s", d.Kind, d.Module, d.Symbol)
	case SubmoduleImport:
		return fmt.Sprintf("import %s.%s", d.Module, d.Submodule)
	default:
		return fmt.Sprintf("import %s", d.Module)
	}
}
