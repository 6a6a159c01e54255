package resolver

// ModuleRegistry is an index of known modules keyed by dotted module path.
// Registration happens while the build system discovers dependencies; the
// registry is then frozen and reads are pure, so independent compilation
// units may resolve against it concurrently.
type ModuleRegistry interface {
	// Register adds the given module.  It is an error to register the same
	// module path twice or to register after Freeze.
	Register(module *Module) error

	// Lookup returns the module with the given dotted path.
	Lookup(name string) (*Module, error)

	// LookupSymbol returns the declaration with the given kind and name
	// within the named module.
	LookupSymbol(moduleName string, kind SymbolKind, name string) (*Symbol, error)

	// LookupSubmodule returns the named submodule of the named module.
	LookupSubmodule(moduleName, submoduleName string) (*Module, error)

	// Freeze marks the registry read-only.
	Freeze()
}
