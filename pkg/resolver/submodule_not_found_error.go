package resolver

import "fmt"

// SubmoduleNotFoundError is returned when a submodule import names a
// submodule its module does not declare.
type SubmoduleNotFoundError struct {
	// Module is the dotted path of the enclosing module.
	Module string
	// Name is the missing submodule name.
	Name string
}

func (e *SubmoduleNotFoundError) Error() string {
	return fmt.Sprintf("module %q has no submodule %q", e.Module, e.Name)
}
