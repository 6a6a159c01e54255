package resolver

import (
	"sort"
	"strings"
)

// Module is a named set of symbols plus a set of named submodules.  Modules
// are assembled once (during registration or index loading) and treated as
// immutable afterwards.
type Module struct {
	name       string
	symbols    []*Symbol
	index      map[symbolKey]*Symbol
	submodules map[string]*Module
}

type symbolKey struct {
	kind SymbolKind
	name string
}

// NewModule constructs a new empty module with the given dotted path name.
func NewModule(name string) *Module {
	return &Module{
		name:       name,
		index:      make(map[symbolKey]*Symbol),
		submodules: make(map[string]*Module),
	}
}

// Name returns the dotted path of the module.
func (m *Module) Name() string {
	return m.name
}

// PutSymbol adds a top-level declaration to the module.  A second symbol with
// the same kind and name is a registry error.
func (m *Module) PutSymbol(sym *Symbol) error {
	key := symbolKey{sym.Kind, sym.Name}
	if _, ok := m.index[key]; ok {
		return &DuplicateSymbolError{Module: m.name, Kind: sym.Kind, Name: sym.Name}
	}
	if sym.Module == "" {
		sym.Module = m.name
	}
	m.index[key] = sym
	m.symbols = append(m.symbols, sym)
	return nil
}

// Symbol returns the declaration with the given kind and name.
func (m *Module) Symbol(kind SymbolKind, name string) (*Symbol, bool) {
	sym, ok := m.index[symbolKey{kind, name}]
	return sym, ok
}

// SymbolsNamed returns all declarations with the given name, in declaration
// order.  Within one module these always differ in kind.
func (m *Module) SymbolsNamed(name string) (symbols []*Symbol) {
	for _, sym := range m.symbols {
		if sym.Name == name {
			symbols = append(symbols, sym)
		}
	}
	return
}

// Symbols returns all top-level declarations in declaration order.
func (m *Module) Symbols() []*Symbol {
	return m.symbols
}

// PutSubmodule adds a submodule, keyed by the last segment of its dotted
// path ("Triathlon.Swim" is addressable as "Swim" within "Triathlon").
func (m *Module) PutSubmodule(sub *Module) error {
	base := basePathSegment(sub.name)
	if _, ok := m.submodules[base]; ok {
		return &DuplicateModuleError{Name: sub.name}
	}
	m.submodules[base] = sub
	return nil
}

// Submodule returns the submodule with the given simple name.
func (m *Module) Submodule(name string) (*Module, bool) {
	sub, ok := m.submodules[name]
	return sub, ok
}

func basePathSegment(path string) string {
	if index := strings.LastIndex(path, "."); index >= 0 {
		return path[index+1:]
	}
	return path
}

// Submodules returns the submodules sorted by name.
func (m *Module) Submodules() []*Module {
	subs := make([]*Module, 0, len(m.submodules))
	for _, sub := range m.submodules {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].name < subs[j].name
	})
	return subs
}
