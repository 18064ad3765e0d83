package compileerr

import (
	"strings"
	"testing"

	"github.com/exprlang/exprc/internal/parser"
	"github.com/exprlang/exprc/internal/value"
)

func TestFormatPointsAtOffset(t *testing.T) {
	source := "1 + "
	e := New(value.ErrSyntax, "unexpected end of input", source, len(source))
	out := e.Format(false)
	if !strings.Contains(out, "1 + ") {
		t.Fatalf("expected source line in output, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("expected caret in output, got %q", out)
	}
	if !strings.Contains(out, "unexpected end of input") {
		t.Fatalf("expected message in output, got %q", out)
	}
}

func TestFromParseErrorRoundTrips(t *testing.T) {
	ws := value.NewWorkspace(64)
	err := parser.CompileNumber("1 + ", ws)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	ce := FromParseError(err, "1 + ")
	if ce.Kind != value.ErrSyntax {
		t.Fatalf("got kind %v, want syntax", ce.Kind)
	}
	if ce.Offset != err.Offset {
		t.Fatalf("offset not preserved: got %d, want %d", ce.Offset, err.Offset)
	}
}

func TestFormatErrorsNumbersMultiple(t *testing.T) {
	a := New(value.ErrSyntax, "first", "x", 0)
	b := New(value.ErrSyntax, "second", "x", 0)
	out := FormatErrors([]*CompileError{a, b}, false)
	if !strings.Contains(out, "2 error(s)") {
		t.Fatalf("expected error count header, got %q", out)
	}
	if !strings.Contains(out, "[Error 1 of 2]") || !strings.Contains(out, "[Error 2 of 2]") {
		t.Fatalf("expected numbered headers, got %q", out)
	}
}

func TestFormatErrorsEmpty(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
