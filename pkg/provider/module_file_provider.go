package provider

import (
	"flag"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/fathom-lang/nameres/pkg/collections"
	"github.com/fathom-lang/nameres/pkg/index"
	"github.com/fathom-lang/nameres/pkg/resolver"
)

// ModuleFileProvider populates a ModuleRegistry from yaml module index
// files on disk.
type ModuleFileProvider struct {
	logger   zerolog.Logger
	progress mobyprogress.Output
	// raw repeatable flag values; each one is a doublestar pattern
	patterns collections.StringSlice
}

// NewModuleFileProvider constructs a new provider.
func NewModuleFileProvider(logger zerolog.Logger, progress mobyprogress.Output) *ModuleFileProvider {
	return &ModuleFileProvider{
		logger:   logger,
		progress: progress,
	}
}

// RegisterFlags configures the -module_file flag.
func (p *ModuleFileProvider) RegisterFlags(fs *flag.FlagSet) {
	fs.Var(&p.patterns, "module_file", "path or doublestar pattern of module index yaml files (repeatable)")
}

// LoadModules expands the configured patterns, reads each module index
// file, and registers the modules.  The registry is left unfrozen so the
// caller can add more before freezing.
func (p *ModuleFileProvider) LoadModules(registry resolver.ModuleRegistry) error {
	var filenames []string
	for _, pattern := range p.patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("bad -module_file pattern %q: %w", pattern, err)
		}
		filenames = append(filenames, matches...)
	}
	filenames = collections.Unique(filenames)

	for i, filename := range filenames {
		spec, err := index.ReadModuleSpec(filename)
		if err != nil {
			return fmt.Errorf("reading module index %s: %w", filename, err)
		}
		module, err := makeModule(spec, "")
		if err != nil {
			return fmt.Errorf("assembling module %q: %w", spec.Name, err)
		}
		if err := registry.Register(module); err != nil {
			return fmt.Errorf("registering module %q: %w", spec.Name, err)
		}
		p.logger.Debug().Str("file", filename).Str("module", module.Name()).Msg("loaded module index")
		writeLoadProgress(p.progress, i+1, len(filenames), i+1 == len(filenames))
	}

	return nil
}

// makeModule converts a ModuleSpec into a Module, recursing into
// submodules.  Submodule names are dotted under the parent path.
func makeModule(spec *index.ModuleSpec, parent string) (*resolver.Module, error) {
	name := spec.Name
	if parent != "" {
		name = parent + "." + spec.Name
	}
	module := resolver.NewModule(name)

	for _, symSpec := range spec.Symbols {
		sym, err := makeSymbol(symSpec, name)
		if err != nil {
			return nil, err
		}
		if err := module.PutSymbol(sym); err != nil {
			return nil, err
		}
	}
	for _, subSpec := range spec.Submodules {
		sub, err := makeModule(subSpec, name)
		if err != nil {
			return nil, err
		}
		if err := module.PutSubmodule(sub); err != nil {
			return nil, err
		}
	}

	return module, nil
}

func makeSymbol(spec *index.SymbolSpec, owner string) (*resolver.Symbol, error) {
	kind, ok := resolver.ParseSymbolKind(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown symbol kind %q (symbol %q)", spec.Kind, spec.Name)
	}
	sym := resolver.NewSymbol(kind, spec.Name, owner)
	sym.Signature = spec.Signature
	for _, memberSpec := range spec.Members {
		member, err := makeSymbol(memberSpec, owner)
		if err != nil {
			return nil, err
		}
		sym.Members = append(sym.Members, member)
	}
	return sym, nil
}
