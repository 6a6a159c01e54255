package resolver

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fathom-lang/nameres/pkg/testutil"
)

func TestModuleRegistryRegister(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	registry := NewModuleRegistryTrie(logger)

	if err := registry.Register(triathlon()); err != nil {
		t.Fatal(err)
	}

	// second registration of the same name fails and leaves the first intact
	second := NewModule("Triathlon")
	second.PutSymbol(NewSymbol(FuncKind, "sprint", ""))
	err := registry.Register(second)
	var dup *DuplicateModuleError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateModuleError, got %v", err)
	}

	module, err := registry.Lookup("Triathlon")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := module.Symbol(FuncKind, "sprint"); ok {
		t.Error("failed registration mutated the registry")
	}
	if _, ok := module.Symbol(FuncKind, "swim"); !ok {
		t.Error("original registration was lost")
	}
}

func TestModuleRegistryFreeze(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	registry := NewModuleRegistryTrie(logger)

	registry.Freeze()

	if err := registry.Register(triathlon()); !errors.Is(err, ErrRegistryFrozen) {
		t.Fatalf("want ErrRegistryFrozen, got %v", err)
	}
}

func TestModuleRegistryLookup(t *testing.T) {
	for name, tc := range map[string]struct {
		modules []*Module
		name    string
		want    string
		wantErr string
	}{
		"degenerate": {
			name:    "Triathlon",
			wantErr: `no such module "Triathlon"`,
		},
		"top-level hit": {
			modules: []*Module{triathlon()},
			name:    "Triathlon",
			want:    "Triathlon",
		},
		"submodule by dotted path": {
			modules: []*Module{func() *Module {
				m := triathlon()
				m.PutSubmodule(NewModule("Triathlon.Swim"))
				return m
			}()},
			name: "Triathlon.Swim",
			want: "Triathlon.Swim",
		},
		"prefix is not a match": {
			modules: []*Module{triathlon()},
			name:    "Triathlon.Swim",
			wantErr: `no such module "Triathlon.Swim"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			logger := testutil.NewTestLogger(t)
			registry := NewModuleRegistryTrie(logger)
			for _, module := range tc.modules {
				if err := registry.Register(module); err != nil {
					t.Fatal(err)
				}
			}

			module, err := registry.Lookup(tc.name)

			var gotErr, gotName string
			if err != nil {
				gotErr = err.Error()
			}
			if module != nil {
				gotName = module.Name()
			}
			if diff := cmp.Diff(tc.wantErr, gotErr); diff != "" {
				t.Fatalf("error (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.want, gotName); diff != "" {
				t.Errorf("module (-want +got):\n%s", diff)
			}
		})
	}
}

func TestModuleRegistryLookupSymbol(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	registry := NewModuleRegistryTrie(logger)
	if err := registry.Register(pentathlon()); err != nil {
		t.Fatal(err)
	}

	sym, err := registry.LookupSymbol("Pentathlon", FuncKind, "fence")
	if err != nil {
		t.Fatal(err)
	}
	want := &Symbol{Kind: FuncKind, Name: "fence", Module: "Pentathlon"}
	if diff := cmp.Diff(want, sym); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	_, err = registry.LookupSymbol("Pentathlon", StructKind, "fence")
	var notFound *SymbolNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("want SymbolNotFoundError, got %v", err)
	}
}

func TestModuleRegistryLookupSubmodule(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	registry := NewModuleRegistryTrie(logger)

	m := triathlon()
	sub := NewModule("Triathlon.Swim")
	sub.PutSymbol(NewSymbol(FuncKind, "freestyle", ""))
	m.PutSubmodule(sub)
	if err := registry.Register(m); err != nil {
		t.Fatal(err)
	}

	got, err := registry.LookupSubmodule("Triathlon", "Swim")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name() != "Triathlon.Swim" {
		t.Errorf("want Triathlon.Swim, got %s", got.Name())
	}

	_, err = registry.LookupSubmodule("Triathlon", "Dive")
	var notFound *SubmoduleNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("want SubmoduleNotFoundError, got %v", err)
	}
}

func TestModuleDuplicateSymbol(t *testing.T) {
	m := NewModule("Triathlon")
	if err := m.PutSymbol(NewSymbol(FuncKind, "swim", "")); err != nil {
		t.Fatal(err)
	}

	err := m.PutSymbol(NewSymbol(FuncKind, "swim", ""))
	var dup *DuplicateSymbolError
	if !errors.As(err, &dup) {
		t.Fatalf("want DuplicateSymbolError, got %v", err)
	}

	// different kind under the same name is independently addressable
	if err := m.PutSymbol(NewSymbol(StructKind, "swim", "")); err != nil {
		t.Fatal(err)
	}
}
