package resolver

import "fmt"

// RefContext says in what syntactic position a reference occurs, so
// candidates can be filtered to the compatible namespace.
type RefContext int

const (
	// AnyContext places no kind constraint on candidates.
	AnyContext RefContext = iota
	// ValueContext is a call or expression position.
	ValueContext
	// TypeContext is a type annotation position.
	TypeContext
)

// String implements fmt.Stringer
func (c RefContext) String() string {
	switch c {
	case ValueContext:
		return "value"
	case TypeContext:
		return "type"
	}
	return "any"
}

// Matches returns true if a symbol of the given kind is compatible with
// this reference context.
func (c RefContext) Matches(kind SymbolKind) bool {
	switch c {
	case ValueContext:
		return kind.IsValue()
	case TypeContext:
		return kind.IsType()
	}
	return true
}

// Position locates a reference in source text for diagnostics.
type Position struct {
	Filename string
	Line     int
	Col      int
}

// String implements fmt.Stringer
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// Reference is one name use in source text, optionally module-qualified.
type Reference struct {
	// Name is the referenced name.
	Name string
	// Qualifier is the dotted module path prefix, empty for an unqualified
	// reference.
	Qualifier string
	// Context is the syntactic position of the reference.
	Context RefContext
	// Pos locates the reference for diagnostics.
	Pos Position
}

// String implements fmt.Stringer
func (r *Reference) String() string {
	if r.Qualifier != "" {
		return r.Qualifier + "." + r.Name
	}
	return r.Name
}
