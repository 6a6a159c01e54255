package resolver_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fathom-lang/nameres/pkg/resolver"
	"github.com/fathom-lang/nameres/pkg/resolver/mocks"
	"github.com/fathom-lang/nameres/pkg/testutil"
)

func makeRegistry(t *testing.T, modules ...*resolver.Module) resolver.ModuleRegistry {
	registry := resolver.NewModuleRegistryTrie(testutil.NewTestLogger(t))
	for _, module := range modules {
		if err := registry.Register(module); err != nil {
			t.Fatal(err)
		}
	}
	registry.Freeze()
	return registry
}

func makeTriathlon() *resolver.Module {
	m := resolver.NewModule("Triathlon")
	m.PutSymbol(resolver.NewSymbol(resolver.FuncKind, "swim", ""))
	m.PutSymbol(resolver.NewSymbol(resolver.FuncKind, "bike", ""))
	sub := resolver.NewModule("Triathlon.Swim")
	sub.PutSymbol(resolver.NewSymbol(resolver.FuncKind, "freestyle", ""))
	m.PutSubmodule(sub)
	return m
}

func TestImportTableBuilder(t *testing.T) {
	for name, tc := range map[string]struct {
		imports      []*resolver.ImportDeclaration
		policy       resolver.SubmoduleReexportPolicy
		wantLen      int
		wantModules  []string
		wantErrCount int
	}{
		"degenerate": {
			wantModules: []string{},
		},
		"whole module contributes every symbol": {
			imports: []*resolver.ImportDeclaration{
				resolver.NewWholeModuleImport("Triathlon"),
			},
			wantLen:     2,
			wantModules: []string{"Triathlon"},
		},
		"whole module with reexport policy includes submodules": {
			imports: []*resolver.ImportDeclaration{
				resolver.NewWholeModuleImport("Triathlon"),
			},
			policy:      resolver.ReexportSubmodules,
			wantLen:     3,
			wantModules: []string{"Triathlon", "Triathlon.Swim"},
		},
		"single symbol contributes exactly one binding": {
			imports: []*resolver.ImportDeclaration{
				resolver.NewSingleSymbolImport("Triathlon", resolver.FuncKind, "swim"),
			},
			wantLen:     1,
			wantModules: []string{},
		},
		"submodule import contributes the submodule": {
			imports: []*resolver.ImportDeclaration{
				resolver.NewSubmoduleImport("Triathlon", "Swim"),
			},
			wantLen:     1,
			wantModules: []string{"Triathlon.Swim"},
		},
		"faulty declaration is skipped, rest still builds": {
			imports: []*resolver.ImportDeclaration{
				resolver.NewWholeModuleImport("Decathlon"),
				resolver.NewWholeModuleImport("Triathlon"),
				resolver.NewSingleSymbolImport("Triathlon", resolver.FuncKind, "sprint"),
				resolver.NewSubmoduleImport("Triathlon", "Dive"),
			},
			wantLen:      2,
			wantModules:  []string{"Triathlon"},
			wantErrCount: 3,
		},
	} {
		t.Run(name, func(t *testing.T) {
			registry := makeRegistry(t, makeTriathlon())
			builder := resolver.NewImportTableBuilder(testutil.NewTestLogger(t), registry, tc.policy)

			table, errs := builder.Build(tc.imports)

			if len(errs) != tc.wantErrCount {
				t.Fatalf("want %d errors, got %v", tc.wantErrCount, errs)
			}
			if table.Len() != tc.wantLen {
				t.Errorf("want %d bindings, got %d", tc.wantLen, table.Len())
			}
			if diff := cmp.Diff(tc.wantModules, table.ModuleNames()); diff != "" {
				t.Errorf("modules (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImportTableBuilderErrorAttribution(t *testing.T) {
	registry := makeRegistry(t, makeTriathlon())
	builder := resolver.NewImportTableBuilder(testutil.NewTestLogger(t), registry, resolver.NoSubmoduleReexport)

	decl := resolver.NewSingleSymbolImport("Triathlon", resolver.StructKind, "swim")
	_, errs := builder.Build([]*resolver.ImportDeclaration{decl})
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %v", errs)
	}

	var importErr *resolver.ImportError
	if !errors.As(errs[0], &importErr) {
		t.Fatalf("want ImportError, got %v", errs[0])
	}
	if importErr.Decl != decl {
		t.Errorf("error attributed to the wrong declaration: %v", importErr.Decl)
	}
	var notFound *resolver.SymbolNotFoundError
	if !errors.As(errs[0], &notFound) {
		t.Fatalf("want wrapped SymbolNotFoundError, got %v", errs[0])
	}
}

func TestImportTableBuilderRegistryCalls(t *testing.T) {
	registry := mocks.NewModuleRegistry(t)
	registry.
		On("Lookup", "Decathlon").
		Once().
		Return(nil, &resolver.ModuleNotFoundError{Name: "Decathlon"})

	builder := resolver.NewImportTableBuilder(testutil.NewTestLogger(t), registry, resolver.NoSubmoduleReexport)
	table, errs := builder.Build([]*resolver.ImportDeclaration{
		resolver.NewWholeModuleImport("Decathlon"),
	})

	if table.Len() != 0 {
		t.Errorf("want empty table, got %d bindings", table.Len())
	}
	if len(errs) != 1 {
		t.Fatalf("want 1 error, got %v", errs)
	}
	var notFound *resolver.ModuleNotFoundError
	if !errors.As(errs[0], &notFound) {
		t.Fatalf("want wrapped ModuleNotFoundError, got %v", errs[0])
	}
}
