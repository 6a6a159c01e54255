package resolver

import (
	"github.com/rs/zerolog"

	"github.com/fathom-lang/nameres/pkg/collections"
)

// Resolver is the binding engine: given a reference, the unit's local scope
// and its import table, it returns exactly one declaration or an error
// value.  Resolution is a pure read over frozen inputs, so independent
// units may share one resolver concurrently.
type Resolver struct {
	logger   zerolog.Logger
	registry ModuleRegistry
}

// NewResolver constructs a resolver against the given registry.
func NewResolver(logger zerolog.Logger, registry ModuleRegistry) *Resolver {
	return &Resolver{
		logger:   logger,
		registry: registry,
	}
}

// tierStage produces the candidate symbols for one precedence tier.
type tierStage func() []*Symbol

// Resolve searches the precedence chain local -> imported declarations ->
// imported modules, stopping at the first tier that yields any candidate.
// One candidate resolves; several are ambiguous; none at any tier is
// unresolved.
func (r *Resolver) Resolve(ref *Reference, locals *LocalScope, table *ImportTable) ResolutionResult {
	if ref.Qualifier != "" {
		return r.resolveQualified(ref, locals, table)
	}

	stages := []tierStage{
		func() []*Symbol { return localCandidates(ref, locals) },
		func() []*Symbol { return declarationCandidates(ref, table) },
		func() []*Symbol { return moduleCandidates(ref, table) },
	}

	for _, stage := range stages {
		candidates := stage()
		switch len(candidates) {
		case 0:
			continue
		case 1:
			return Resolved(ref, candidates[0])
		default:
			return Failed(ref, NewAmbiguousReferenceError(ref.Name, candidates))
		}
	}

	return Failed(ref, ErrUnresolved)
}

// localCandidates collects context-compatible declarations from the unit
// itself.
func localCandidates(ref *Reference, locals *LocalScope) (candidates []*Symbol) {
	for _, sym := range locals.Lookup(ref.Name) {
		if ref.Context.Matches(sym.Kind) {
			candidates = append(candidates, sym)
		}
	}
	return
}

// declarationCandidates collects single-symbol import bindings.  Among
// several bindings of the same name the most recently written import wins:
// a later "import func M.s" is a deliberate override, not an ambiguity.
func declarationCandidates(ref *Reference, table *ImportTable) []*Symbol {
	var winner *Binding
	for _, binding := range table.Bindings(ref.Name) {
		if binding.Tier != TierImportedDeclaration {
			continue
		}
		if !ref.Context.Matches(binding.Symbol.Kind) {
			continue
		}
		if winner == nil || binding.Order >= winner.Order {
			winner = binding
		}
	}
	if winner == nil {
		return nil
	}
	return []*Symbol{winner.Symbol}
}

// moduleCandidates collects whole-module and submodule import bindings.
// The same symbol contributed twice (the same module imported twice)
// collapses to one candidate; distinct owners stay distinct and surface as
// ambiguity.
func moduleCandidates(ref *Reference, table *ImportTable) []*Symbol {
	var candidates []*Symbol
	for _, binding := range table.Bindings(ref.Name) {
		if binding.Tier != TierImportedModule {
			continue
		}
		if !ref.Context.Matches(binding.Symbol.Kind) {
			continue
		}
		candidates = append(candidates, binding.Symbol)
	}
	return collections.Unique(candidates)
}

// resolveQualified handles a "Module.symbol" reference.  A local or
// imported-declaration binding of the qualifier name shadows the module of
// the same name; only when no such binding exists (or the binding lacks the
// member) does module-qualified lookup apply.
func (r *Resolver) resolveQualified(ref *Reference, locals *LocalScope, table *ImportTable) ResolutionResult {
	if shadow := shadowingSymbol(ref.Qualifier, locals, table); shadow != nil {
		if member, ok := shadow.Member(ref.Name); ok && ref.Context.Matches(member.Kind) {
			return Resolved(ref, member)
		}
		r.logger.Debug().
			Str("ref", ref.String()).
			Str("shadow", shadow.String()).
			Msg("qualifier shadowed, falling back to module lookup")
		sym, err := r.lookupQualified(ref)
		if err != nil {
			return Failed(ref, &MemberNotFoundError{Symbol: shadow, Name: ref.Name})
		}
		return Resolved(ref, sym)
	}

	sym, err := r.lookupQualified(ref)
	if err != nil {
		return Failed(ref, err)
	}
	return Resolved(ref, sym)
}

// shadowingSymbol returns the local or imported-declaration binding of the
// given name, if any.  Local declarations take precedence.
func shadowingSymbol(name string, locals *LocalScope, table *ImportTable) *Symbol {
	if symbols := locals.Lookup(name); len(symbols) > 0 {
		return symbols[0]
	}
	for _, binding := range table.Bindings(name) {
		if binding.Tier == TierImportedDeclaration {
			return binding.Symbol
		}
	}
	return nil
}

// lookupQualified binds "Module.symbol" directly through the registry,
// bypassing the tiered search.  Names repeat within one module only when
// kinds differ, so after context filtering the first declaration wins and
// the result is never ambiguous.
func (r *Resolver) lookupQualified(ref *Reference) (*Symbol, error) {
	module, err := r.registry.Lookup(ref.Qualifier)
	if err != nil {
		return nil, err
	}
	for _, sym := range module.SymbolsNamed(ref.Name) {
		if ref.Context.Matches(sym.Kind) {
			return sym, nil
		}
	}
	return nil, &SymbolNotFoundError{Module: ref.Qualifier, Name: ref.Name}
}
