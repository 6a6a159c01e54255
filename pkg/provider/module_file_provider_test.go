package provider_test

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pcj/mobyprogress"
	"github.com/stretchr/testify/require"

	"github.com/fathom-lang/nameres/pkg/provider"
	"github.com/fathom-lang/nameres/pkg/resolver"
	"github.com/fathom-lang/nameres/pkg/testutil"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func loadModules(t *testing.T, dir string, patterns ...string) (resolver.ModuleRegistry, error) {
	t.Helper()
	p := provider.NewModuleFileProvider(testutil.NewTestLogger(t), mobyprogress.NewProgressOutput(io.Discard))

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	p.RegisterFlags(fs)
	var args []string
	for _, pattern := range patterns {
		args = append(args, "-module_file="+filepath.Join(dir, pattern))
	}
	require.NoError(t, fs.Parse(args))

	registry := resolver.NewModuleRegistryTrie(testutil.NewTestLogger(t))
	err := p.LoadModules(registry)
	return registry, err
}

func TestModuleFileProviderLoadModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "triathlon.yaml", `
name: Triathlon
symbols:
  - kind: func
    name: swim
submodules:
  - name: Swim
    symbols:
      - kind: func
        name: freestyle
`)
	writeFile(t, dir, "pentathlon.yaml", `
name: Pentathlon
symbols:
  - kind: func
    name: swim
  - kind: enum
    name: Weapon
    members:
      - kind: case
        name: epee
`)

	registry, err := loadModules(t, dir, "*.yaml")
	require.NoError(t, err)

	sym, err := registry.LookupSymbol("Triathlon", resolver.FuncKind, "swim")
	require.NoError(t, err)
	require.Equal(t, "Triathlon", sym.Module)

	sub, err := registry.LookupSubmodule("Triathlon", "Swim")
	require.NoError(t, err)
	require.Equal(t, "Triathlon.Swim", sub.Name())

	// submodule members are owned by the dotted submodule path
	free, err := registry.LookupSymbol("Triathlon.Swim", resolver.FuncKind, "freestyle")
	require.NoError(t, err)
	require.Equal(t, "Triathlon.Swim", free.Module)

	weapon, err := registry.LookupSymbol("Pentathlon", resolver.EnumKind, "Weapon")
	require.NoError(t, err)
	member, ok := weapon.Member("epee")
	require.True(t, ok)
	require.Equal(t, resolver.EnumCaseKind, member.Kind)
}

func TestModuleFileProviderBadKind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", `
name: Broken
symbols:
  - kind: macro
    name: boom
`)

	_, err := loadModules(t, dir, "*.yaml")
	require.ErrorContains(t, err, `unknown symbol kind "macro"`)
}

func TestModuleFileProviderDuplicateSymbol(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dup.yaml", `
name: Broken
symbols:
  - kind: func
    name: swim
  - kind: func
    name: swim
`)

	_, err := loadModules(t, dir, "*.yaml")
	var dup *resolver.DuplicateSymbolError
	require.ErrorAs(t, err, &dup)
}

func TestModuleFileProviderOverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "triathlon.yaml", "name: Triathlon\n")

	// the same file matched by two patterns must register once
	registry, err := loadModules(t, dir, "*.yaml", "triathlon.*")
	require.NoError(t, err)

	_, err = registry.Lookup("Triathlon")
	require.NoError(t, err)
}
