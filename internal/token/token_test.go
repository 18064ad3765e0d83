package token

import "testing"

func TestLookupIdentKnown(t *testing.T) {
	tests := map[string]Type{
		"PI":       CONST_PI,
		"true":     KW_TRUE,
		"True":     KW_TRUE,
		"TRUE":     KW_TRUE,
		"abs":      FUNC_ABS,
		"ifelse":   FUNC_IFELSE,
		"datepart": FUNC_DATEPART,
		"variable": FUNC_VARIABLE,
	}
	for name, want := range tests {
		got, ok := LookupIdent(name)
		if !ok {
			t.Errorf("LookupIdent(%q) not found", name)
			continue
		}
		if got != want {
			t.Errorf("LookupIdent(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestLookupIdentUnknown(t *testing.T) {
	for _, name := range []string{"foo", "Abs", "ABS", "xyz"} {
		if _, ok := LookupIdent(name); ok {
			t.Errorf("LookupIdent(%q) unexpectedly found", name)
		}
	}
}

func TestIdentifiersSorted(t *testing.T) {
	for i := 1; i < len(identifiers); i++ {
		if identifiers[i-1].Name >= identifiers[i].Name {
			t.Fatalf("identifiers not sorted at %d: %q >= %q", i, identifiers[i-1].Name, identifiers[i].Name)
		}
	}
}
