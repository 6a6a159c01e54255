package resolver

import "sort"

// ImportTable is the ordered set of bindings the import declarations of one
// compilation unit contribute to its visible namespace.  The table retains
// every contributed binding; deduplication and ambiguity detection happen
// lazily in the resolver, per lookup.
type ImportTable struct {
	bindings []*Binding
	byName   map[string][]*Binding
	modules  map[string]bool
}

// NewImportTable constructs a new empty import table.
func NewImportTable() *ImportTable {
	return &ImportTable{
		byName:  make(map[string][]*Binding),
		modules: make(map[string]bool),
	}
}

func (t *ImportTable) add(binding *Binding) {
	t.bindings = append(t.bindings, binding)
	t.byName[binding.Symbol.Name] = append(t.byName[binding.Symbol.Name], binding)
}

func (t *ImportTable) addModule(name string) {
	t.modules[name] = true
}

// Bindings returns all bindings for the given name, in contribution order.
func (t *ImportTable) Bindings(name string) []*Binding {
	return t.byName[name]
}

// HasModule returns true if the named module (or submodule path) was
// imported by any declaration.
func (t *ImportTable) HasModule(name string) bool {
	return t.modules[name]
}

// ModuleNames returns the sorted list of imported module paths.
func (t *ImportTable) ModuleNames() []string {
	names := make([]string, 0, len(t.modules))
	for name := range t.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of contributed bindings.
func (t *ImportTable) Len() int {
	return len(t.bindings)
}
