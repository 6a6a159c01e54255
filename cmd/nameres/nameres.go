package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/fathom-lang/nameres/pkg/index"
	"github.com/fathom-lang/nameres/pkg/provider"
	"github.com/fathom-lang/nameres/pkg/resolver"
)

var (
	unitFile           string
	reexportSubmodules bool
	verbose            bool
)

func main() {
	log.SetPrefix("nameres: ")
	log.SetFlags(0) // don't print timestamps

	logger := zerolog.New(os.Stderr).Level(zerolog.WarnLevel)
	progress := mobyprogress.NewProgressOutput(os.Stderr)
	modules := provider.NewModuleFileProvider(logger, progress)

	fs := flag.NewFlagSet("nameres", flag.ContinueOnError)
	fs.StringVar(&unitFile, "unit_file", "", "the compilation unit yaml file to resolve")
	fs.BoolVar(&reexportSubmodules, "reexport_submodules", false, "whole-module imports also contribute submodule symbols")
	fs.BoolVar(&verbose, "v", false, "enable debug logging")
	modules.RegisterFlags(fs)

	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	if unitFile == "" {
		log.Fatal("-unit_file is required")
	}
	if verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	if err := run(logger, modules); err != nil {
		log.Fatal(err)
	}
}

func run(logger zerolog.Logger, modules *provider.ModuleFileProvider) error {
	registry := resolver.NewModuleRegistryTrie(logger)
	if err := modules.LoadModules(registry); err != nil {
		return err
	}
	registry.Freeze()

	unit, err := index.ReadUnitSpec(unitFile)
	if err != nil {
		return fmt.Errorf("reading unit %s: %w", unitFile, err)
	}

	policy := resolver.NoSubmoduleReexport
	if reexportSubmodules {
		policy = resolver.ReexportSubmodules
	}

	reporter := resolver.NewReporter(logger)

	decls, declErrs := makeImports(unit)
	reporter.ReportImportErrors(declErrs)

	builder := resolver.NewImportTableBuilder(logger, registry, policy)
	table, buildErrs := builder.Build(decls)
	reporter.ReportImportErrors(buildErrs)

	locals, localErrs := makeLocals(unit)
	reporter.ReportImportErrors(localErrs)

	rslv := resolver.NewResolver(logger, registry)
	for _, refSpec := range unit.References {
		ref, err := makeReference(unit.Filename, refSpec)
		if err != nil {
			reporter.ReportImportErrors([]error{err})
			continue
		}
		result := rslv.Resolve(ref, locals, table)
		if result.IsResolved() {
			fmt.Println(result)
		} else {
			reporter.ReportResult(result)
		}
	}

	for _, diag := range reporter.Diagnostics() {
		fmt.Println(diag)
	}
	if reporter.HasErrors() {
		return fmt.Errorf("%d unresolvable references or bad imports", len(reporter.Diagnostics()))
	}
	return nil
}
