package main

import (
	"fmt"

	"github.com/fathom-lang/nameres/pkg/index"
	"github.com/fathom-lang/nameres/pkg/resolver"
)

// makeImports converts the unit's import specs into declarations,
// collecting one error per malformed spec so the rest still convert.
func makeImports(unit *index.UnitSpec) (decls []*resolver.ImportDeclaration, errs []error) {
	for _, spec := range unit.Imports {
		decl, err := makeImport(spec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		decls = append(decls, decl)
	}
	return
}

func makeImport(spec *index.ImportSpec) (*resolver.ImportDeclaration, error) {
	if spec.Module == "" {
		return nil, fmt.Errorf("import spec is missing a module name")
	}
	switch {
	case spec.Symbol != "":
		kind, ok := resolver.ParseSymbolKind(spec.Kind)
		if !ok {
			return nil, fmt.Errorf("import of %s.%s: unknown symbol kind %q", spec.Module, spec.Symbol, spec.Kind)
		}
		return resolver.NewSingleSymbolImport(spec.Module, kind, spec.Symbol), nil
	case spec.Submodule != "":
		return resolver.NewSubmoduleImport(spec.Module, spec.Submodule), nil
	default:
		return resolver.NewWholeModuleImport(spec.Module), nil
	}
}

// makeLocals converts the unit's local declaration specs into a scope.
func makeLocals(unit *index.UnitSpec) (*resolver.LocalScope, []error) {
	locals := resolver.NewLocalScope()
	var errs []error
	for _, spec := range unit.Locals {
		sym, err := makeLocalSymbol(spec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		locals.Add(sym)
	}
	return locals, errs
}

func makeLocalSymbol(spec *index.SymbolSpec) (*resolver.Symbol, error) {
	kind, ok := resolver.ParseSymbolKind(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("local %q: unknown symbol kind %q", spec.Name, spec.Kind)
	}
	sym := resolver.NewSymbol(kind, spec.Name, "")
	sym.Signature = spec.Signature
	for _, memberSpec := range spec.Members {
		member, err := makeLocalSymbol(memberSpec)
		if err != nil {
			return nil, err
		}
		sym.Members = append(sym.Members, member)
	}
	return sym, nil
}

func makeReference(filename string, spec *index.ReferenceSpec) (*resolver.Reference, error) {
	if spec.Name == "" {
		return nil, fmt.Errorf("reference spec is missing a name")
	}
	var context resolver.RefContext
	switch spec.Context {
	case "", "any":
		context = resolver.AnyContext
	case "value":
		context = resolver.ValueContext
	case "type":
		context = resolver.TypeContext
	default:
		return nil, fmt.Errorf("reference %q: unknown context %q", spec.Name, spec.Context)
	}
	return &resolver.Reference{
		Name:      spec.Name,
		Qualifier: spec.Qualifier,
		Context:   context,
		Pos: resolver.Position{
			Filename: filename,
			Line:     spec.Line,
			Col:      spec.Col,
		},
	}, nil
}
