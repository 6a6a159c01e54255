package resolver

import "fmt"

// DuplicateModuleError is returned by Register when a module of the same
// name already exists.  The earlier registration remains intact.
type DuplicateModuleError struct {
	// Name is the dotted path of the module.
	Name string
}

func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("duplicate module %q", e.Name)
}
