package eval_test

import (
	"testing"

	"github.com/exprlang/exprc/internal/eval"
	"github.com/exprlang/exprc/internal/parser"
	"github.com/exprlang/exprc/internal/value"
)

func mustCompile(t *testing.T, compile func(string, *value.Workspace) *parser.ParseError, input string) *value.Workspace {
	t.Helper()
	ws := value.NewWorkspace(64)
	if err := compile(input, ws); err != nil {
		t.Fatalf("compile(%q): %v", input, err)
	}
	return ws
}

func TestRunFoldedLiteralNeedsNoResolver(t *testing.T) {
	ws := mustCompile(t, parser.CompileNumber, "1 + 2 * 3")
	program := append([]value.Value(nil), ws.Output()...)
	scratch := value.NewWorkspace(64)
	v, err := eval.Run(program, scratch, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.Kind != value.KindNumber || v.Number() != 7 {
		t.Fatalf("got %#v, want 7", v)
	}
}

func TestRunResolvesVariables(t *testing.T) {
	ws := mustCompile(t, parser.CompileNumber, "$x + $y")
	program := append([]value.Value(nil), ws.Output()...)
	buf := make([]byte, 0)
	ar := value.NewArena(buf)
	ar.Resolve = func(name string) value.Value {
		switch name {
		case "x":
			return value.NewNumber(10)
		case "y":
			return value.NewNumber(32)
		default:
			return value.NewError(value.ErrReference)
		}
	}
	scratch := value.NewWorkspace(64)
	v, err := eval.Run(program, scratch, ar)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.Kind != value.KindNumber || v.Number() != 42 {
		t.Fatalf("got %#v, want 42", v)
	}
}

func TestRunUnresolvedVariableIsReferenceError(t *testing.T) {
	ws := mustCompile(t, parser.CompileNumber, "$missing")
	program := append([]value.Value(nil), ws.Output()...)
	scratch := value.NewWorkspace(64)
	v, err := eval.Run(program, scratch, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.Kind != value.KindError || v.ErrKind() != value.ErrReference {
		t.Fatalf("got %#v, want reference error", v)
	}
}

func TestRunVariableWrongKindIsValueError(t *testing.T) {
	ws := mustCompile(t, parser.CompileNumber, "$x + 1")
	program := append([]value.Value(nil), ws.Output()...)
	buf := make([]byte, 64)
	ar := value.NewArena(buf)
	ar.Resolve = func(string) value.Value { return value.NewString("nope") }
	scratch := value.NewWorkspace(64)
	v, err := eval.Run(program, scratch, ar)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.Kind != value.KindError || v.ErrKind() != value.ErrValue {
		t.Fatalf("got %#v, want value error", v)
	}
}

func TestRunIfelseDiscardsUnselectedBranchError(t *testing.T) {
	ws := mustCompile(t, parser.CompileString, `ifelse(true, "ok", str(1/0))`)
	program := append([]value.Value(nil), ws.Output()...)
	scratch := value.NewWorkspace(64)
	v, err := eval.Run(program, scratch, nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.Kind != value.KindString || v.Str() != "ok" {
		t.Fatalf("got %#v, want \"ok\"", v)
	}
}

func TestRunStringBuiltinUsesArena(t *testing.T) {
	ws := mustCompile(t, parser.CompileString, `upper($name)`)
	program := append([]value.Value(nil), ws.Output()...)
	buf := make([]byte, 64)
	ar := value.NewArena(buf)
	ar.Resolve = func(string) value.Value { return value.NewString("hello") }
	scratch := value.NewWorkspace(64)
	v, err := eval.Run(program, scratch, ar)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if v.Kind != value.KindString || v.Str() != "HELLO" {
		t.Fatalf("got %#v, want \"HELLO\"", v)
	}
}
