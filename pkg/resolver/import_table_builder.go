package resolver

import (
	"github.com/rs/zerolog"
)

// SubmoduleReexportPolicy says whether a whole-module import also
// contributes the symbols of the module's submodules.  The language leaves
// this underspecified, so it is a configurable policy.
type SubmoduleReexportPolicy int

const (
	// NoSubmoduleReexport makes submodule symbols visible only via an
	// explicit submodule import.  This is the default.
	NoSubmoduleReexport SubmoduleReexportPolicy = iota
	// ReexportSubmodules makes a whole-module import contribute every
	// submodule symbol as well.
	ReexportSubmodules
)

// ImportTableBuilder builds the import table for a compilation unit from
// its ordered import declarations.
type ImportTableBuilder struct {
	logger   zerolog.Logger
	registry ModuleRegistry
	policy   SubmoduleReexportPolicy
}

// NewImportTableBuilder constructs a builder against the given registry.
func NewImportTableBuilder(logger zerolog.Logger, registry ModuleRegistry, policy SubmoduleReexportPolicy) *ImportTableBuilder {
	return &ImportTableBuilder{
		logger:   logger,
		registry: registry,
		policy:   policy,
	}
}

// Build processes the declarations in order and returns the table plus one
// error per faulty declaration.  Construction is best-effort: a faulty
// declaration is skipped and the rest of the table still builds, so
// reference resolution can proceed and report further errors.
func (b *ImportTableBuilder) Build(decls []*ImportDeclaration) (*ImportTable, []error) {
	table := NewImportTable()
	var errs []error

	for order, decl := range decls {
		if err := b.apply(table, order, decl); err != nil {
			b.logger.Warn().
				Str("decl", decl.String()).
				Err(err).
				Msg("skipping import declaration")
			errs = append(errs, &ImportError{Decl: decl, Err: err})
		}
	}

	return table, errs
}

func (b *ImportTableBuilder) apply(table *ImportTable, order int, decl *ImportDeclaration) error {
	switch decl.Form {
	case WholeModuleImport:
		module, err := b.registry.Lookup(decl.Module)
		if err != nil {
			return err
		}
		b.addModule(table, order, decl, module)
		if b.policy == ReexportSubmodules {
			for _, sub := range module.Submodules() {
				b.addModule(table, order, decl, sub)
			}
		}
	case SingleSymbolImport:
		sym, err := b.registry.LookupSymbol(decl.Module, decl.Kind, decl.Symbol)
		if err != nil {
			return err
		}
		table.add(&Binding{
			Symbol: sym,
			Tier:   TierImportedDeclaration,
			Order:  order,
			Decl:   decl,
		})
	case SubmoduleImport:
		sub, err := b.registry.LookupSubmodule(decl.Module, decl.Submodule)
		if err != nil {
			return err
		}
		b.addModule(table, order, decl, sub)
	}
	return nil
}

func (b *ImportTableBuilder) addModule(table *ImportTable, order int, decl *ImportDeclaration, module *Module) {
	table.addModule(module.Name())
	for _, sym := range module.Symbols() {
		table.add(&Binding{
			Symbol: sym,
			Tier:   TierImportedModule,
			Order:  order,
			Decl:   decl,
		})
	}
}
