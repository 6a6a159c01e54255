package index

// ModuleSpec describes the exported top-level declarations of one module,
// as produced by the build system's dependency scan.
type ModuleSpec struct {
	// Name is the module name ("Triathlon").
	Name string `yaml:"name"`
	// Symbols is the list of exported declarations.
	Symbols []*SymbolSpec `yaml:"symbols,omitempty"`
	// Submodules is the list of declared submodules.
	Submodules []*ModuleSpec `yaml:"submodules,omitempty"`
}

// SymbolSpec describes one declaration.
type SymbolSpec struct {
	// Kind is the declaration kind ("func", "struct", "enum", ...).
	Kind string `yaml:"kind"`
	// Name is the declared name.
	Name string `yaml:"name"`
	// Signature is an opaque payload carried through for the type checker.
	Signature string `yaml:"signature,omitempty"`
	// Members are nested declarations (enum cases, nested funcs).
	Members []*SymbolSpec `yaml:"members,omitempty"`
}

// UnitSpec describes one compilation unit: its imports as written, its
// local declarations, and the references to resolve.
type UnitSpec struct {
	// Filename is the unit's source filename, used in positions.
	Filename string `yaml:"filename"`
	// Imports is the ordered list of import declarations.
	Imports []*ImportSpec `yaml:"imports,omitempty"`
	// Locals is the list of declarations in the unit itself.
	Locals []*SymbolSpec `yaml:"locals,omitempty"`
	// References is the list of reference sites to resolve.
	References []*ReferenceSpec `yaml:"references,omitempty"`
}

// ImportSpec describes one import declaration.  Module alone is a
// whole-module import; Kind+Symbol make it single-symbol; Submodule makes
// it a submodule import.
type ImportSpec struct {
	Module    string `yaml:"module"`
	Kind      string `yaml:"kind,omitempty"`
	Symbol    string `yaml:"symbol,omitempty"`
	Submodule string `yaml:"submodule,omitempty"`
}

// ReferenceSpec describes one reference site.
type ReferenceSpec struct {
	// Name is the referenced name.
	Name string `yaml:"name"`
	// Qualifier is the optional module qualifier.
	Qualifier string `yaml:"qualifier,omitempty"`
	// Context is "value", "type", or empty for any.
	Context string `yaml:"context,omitempty"`
	Line    int    `yaml:"line,omitempty"`
	Col     int    `yaml:"col,omitempty"`
}
