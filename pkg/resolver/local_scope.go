package resolver

// LocalScope holds the symbols declared directly in a compilation unit.
// Collection of those declarations is the front end's job; the scope only
// needs the flat list.  Duplicate names are retained and surface as
// local-tier ambiguity at resolve time.
type LocalScope struct {
	symbols []*Symbol
	byName  map[string][]*Symbol
}

// NewLocalScope constructs a scope from the given declarations.
func NewLocalScope(symbols ...*Symbol) *LocalScope {
	s := &LocalScope{
		byName: make(map[string][]*Symbol),
	}
	for _, sym := range symbols {
		s.Add(sym)
	}
	return s
}

// Add appends a local declaration.
func (s *LocalScope) Add(sym *Symbol) {
	s.symbols = append(s.symbols, sym)
	s.byName[sym.Name] = append(s.byName[sym.Name], sym)
}

// Lookup returns all local declarations with the given name, in
// declaration order.
func (s *LocalScope) Lookup(name string) []*Symbol {
	return s.byName[name]
}

// Len returns the number of local declarations.
func (s *LocalScope) Len() int {
	return len(s.symbols)
}
