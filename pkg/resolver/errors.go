package resolver

import "fmt"

// ErrUnresolved is the error value assigned to a reference when no tier
// yields a candidate.
var ErrUnresolved = fmt.Errorf("unresolved identifier")

// ErrRegistryFrozen is returned by Register once the registry has been
// frozen for concurrent resolution.
var ErrRegistryFrozen = fmt.Errorf("module registry is frozen")
