package resolver

import "fmt"

// ImportError attributes a table-building failure to the import declaration
// that caused it.
type ImportError struct {
	// Decl is the faulty declaration.
	Decl *ImportDeclaration
	// Err is the underlying failure.
	Err error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Decl, e.Err)
}

// Unwrap supports errors.Is/As against the underlying failure.
func (e *ImportError) Unwrap() error {
	return e.Err
}
