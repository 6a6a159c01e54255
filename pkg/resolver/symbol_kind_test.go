package resolver

import "testing"

func TestParseSymbolKind(t *testing.T) {
	for _, kind := range []SymbolKind{
		StructKind, ClassKind, EnumKind, EnumCaseKind,
		ProtocolKind, TypeAliasKind, FuncKind, ConstKind, VarKind,
	} {
		got, ok := ParseSymbolKind(kind.String())
		if !ok || got != kind {
			t.Errorf("%v did not round-trip (got %v, %t)", kind, got, ok)
		}
	}

	if _, ok := ParseSymbolKind("macro"); ok {
		t.Error("unknown kind name parsed")
	}
	if _, ok := ParseSymbolKind("none"); ok {
		t.Error("NoKind must not be parseable")
	}
}

func TestRefContextMatches(t *testing.T) {
	if !AnyContext.Matches(FuncKind) || !AnyContext.Matches(StructKind) {
		t.Error("any context must match every kind")
	}
	if !ValueContext.Matches(EnumCaseKind) {
		t.Error("enum cases are addressable in value position")
	}
	if ValueContext.Matches(ProtocolKind) {
		t.Error("protocols are not values")
	}
	if !TypeContext.Matches(TypeAliasKind) {
		t.Error("type aliases occupy the type namespace")
	}
	if TypeContext.Matches(VarKind) {
		t.Error("vars do not occupy the type namespace")
	}
}
