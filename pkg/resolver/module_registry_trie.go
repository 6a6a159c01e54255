package resolver

import (
	"strings"
	"sync"

	"github.com/dghubble/trie"
	"github.com/rs/zerolog"
)

// ModuleRegistryTrie implements ModuleRegistry using a trie over dotted
// module paths, so "Triathlon.Swim" is stored under the "Triathlon" subtree
// and submodule lookup is a trie walk.
type ModuleRegistryTrie struct {
	logger  zerolog.Logger
	mux     sync.RWMutex
	frozen  bool
	modules *trie.PathTrie
}

// NewModuleRegistryTrie constructs a new empty registry.
func NewModuleRegistryTrie(logger zerolog.Logger) *ModuleRegistryTrie {
	return &ModuleRegistryTrie{
		logger: logger,
		modules: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: modulePathSegmenter,
		}),
	}
}

// Register implements part of the ModuleRegistry interface.  Submodules are
// registered recursively under their dotted paths.
func (r *ModuleRegistryTrie) Register(module *Module) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}
	if r.modules.Get(module.Name()) != nil {
		return &DuplicateModuleError{Name: module.Name()}
	}
	r.put(module)

	r.logger.Debug().
		Str("module", module.Name()).
		Int("symbols", len(module.Symbols())).
		Msg("registered module")

	return nil
}

func (r *ModuleRegistryTrie) put(module *Module) {
	r.modules.Put(module.Name(), module)
	for _, sub := range module.Submodules() {
		r.put(sub)
	}
}

// Freeze implements part of the ModuleRegistry interface.
func (r *ModuleRegistryTrie) Freeze() {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.frozen = true
}

// Lookup implements part of the ModuleRegistry interface.
func (r *ModuleRegistryTrie) Lookup(name string) (*Module, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	if value := r.modules.Get(name); value != nil {
		return value.(*Module), nil
	}
	return nil, &ModuleNotFoundError{Name: name}
}

// LookupSymbol implements part of the ModuleRegistry interface.
func (r *ModuleRegistryTrie) LookupSymbol(moduleName string, kind SymbolKind, name string) (*Symbol, error) {
	module, err := r.Lookup(moduleName)
	if err != nil {
		return nil, err
	}
	if sym, ok := module.Symbol(kind, name); ok {
		return sym, nil
	}
	return nil, &SymbolNotFoundError{Module: moduleName, Kind: kind, Name: name}
}

// LookupSubmodule implements part of the ModuleRegistry interface.
func (r *ModuleRegistryTrie) LookupSubmodule(moduleName, submoduleName string) (*Module, error) {
	module, err := r.Lookup(moduleName)
	if err != nil {
		return nil, err
	}
	if sub, ok := module.Submodule(submoduleName); ok {
		return sub, nil
	}
	return nil, &SubmoduleNotFoundError{Module: moduleName, Name: submoduleName}
}

// modulePathSegmenter segments string key paths by dot separators. For
// example, "a.b.c" -> ("a", 2), (".b", 4), (".c", -1) in successive calls.
// It does not allocate any heap memory.
func modulePathSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
