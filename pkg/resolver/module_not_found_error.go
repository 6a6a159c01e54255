package resolver

import "fmt"

// ModuleNotFoundError is returned when an import declaration or qualified
// reference names a module that was never registered.
type ModuleNotFoundError struct {
	// Name is the dotted path of the missing module.
	Name string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("no such module %q", e.Name)
}
