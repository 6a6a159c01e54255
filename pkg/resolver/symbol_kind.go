package resolver

import "fmt"

// SymbolKind classifies a top-level declaration.
type SymbolKind int

const (
	NoKind SymbolKind = iota
	StructKind
	ClassKind
	EnumKind
	EnumCaseKind
	ProtocolKind
	TypeAliasKind
	FuncKind
	ConstKind
	VarKind
)

var symbolKindNames = map[SymbolKind]string{
	NoKind:        "none",
	StructKind:    "struct",
	ClassKind:     "class",
	EnumKind:      "enum",
	EnumCaseKind:  "case",
	ProtocolKind:  "protocol",
	TypeAliasKind: "typealias",
	FuncKind:      "func",
	ConstKind:     "let",
	VarKind:       "var",
}

// ParseSymbolKind returns the kind named by the given string, false if the
// string does not name a kind.
func ParseSymbolKind(name string) (SymbolKind, bool) {
	for kind, kindName := range symbolKindNames {
		if kind == NoKind {
			continue
		}
		if name == kindName {
			return kind, true
		}
	}
	return NoKind, false
}

// IsType returns true if the kind occupies the type namespace.
func (k SymbolKind) IsType() bool {
	switch k {
	case StructKind, ClassKind, EnumKind, ProtocolKind, TypeAliasKind:
		return true
	}
	return false
}

// IsValue returns true if the kind occupies the value namespace.  Enum
// cases are addressable in value position.
func (k SymbolKind) IsValue() bool {
	switch k {
	case FuncKind, ConstKind, VarKind, EnumCaseKind:
		return true
	}
	return false
}

// String implements fmt.Stringer
func (k SymbolKind) String() string {
	if name, ok := symbolKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SymbolKind(%d)", int(k))
}
