package builtin

import (
	"math"
	"testing"

	"github.com/exprlang/exprc/internal/token"
	"github.com/exprlang/exprc/internal/value"
)

func num(n float64) value.Value { return value.NewNumber(n) }

func TestArithmeticOperators(t *testing.T) {
	tests := []struct {
		name string
		call value.Caller
		args []value.Value
		want float64
	}{
		{"add", opAdd, []value.Value{num(2), num(3)}, 5},
		{"sub", opSub, []value.Value{num(5), num(3)}, 2},
		{"mul", opMul, []value.Value{num(4), num(3)}, 12},
		{"div", opDiv, []value.Value{num(9), num(3)}, 3},
		{"pow", opPow, []value.Value{num(2), num(10)}, 1024},
		{"unary minus", opUnaryMinus, []value.Value{num(5)}, -5},
		{"unary plus", opUnaryPlus, []value.Value{num(5)}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.call(tt.args, nil)
			if got.Kind != value.KindNumber || got.Number() != tt.want {
				t.Errorf("%s(%v) = %#v, want number %v", tt.name, tt.args, got, tt.want)
			}
		})
	}
}

func TestDivisionByZeroIsValueError(t *testing.T) {
	got := opDiv([]value.Value{num(1), num(0)}, nil)
	if got.Kind != value.KindError || got.ErrKind() != value.ErrDivByZero {
		t.Fatalf("1/0 = %#v, want div-by-zero error", got)
	}
	if iserr := callIserror([]value.Value{got}, nil); !iserr.Bool() {
		t.Error("iserror(1/0) should be true")
	}
}

func TestArithmeticOverflowIsHuge(t *testing.T) {
	got := opMul([]value.Value{num(math.MaxFloat64), num(2)}, nil)
	if got.Kind != value.KindError || got.ErrKind() != value.ErrHuge {
		t.Fatalf("overflowing multiply = %#v, want huge error", got)
	}
}

func TestConstantsAreRepresentableNotErrors(t *testing.T) {
	lits := Literals()
	inf := lits[token.CONST_INF]
	if inf.Kind != value.KindNumber || !math.IsInf(inf.Number(), 1) {
		t.Errorf("CONST_INF literal = %#v, want a representable +Inf number", inf)
	}
	nan := lits[token.CONST_NAN]
	if nan.Kind != value.KindNumber || !math.IsNaN(nan.Number()) {
		t.Errorf("CONST_NAN literal = %#v, want a representable NaN number", nan)
	}
	// abs() of the literal must stay a representable number, not an error:
	// only true arithmetic converts non-finite results (see checkFloat).
	if got := callAbs([]value.Value{inf}, nil); got.Kind != value.KindNumber {
		t.Errorf("abs(Inf) = %#v, want a number", got)
	}
}

func TestIsNaNIsInf(t *testing.T) {
	if !callIsNaN([]value.Value{num(math.NaN())}, nil).Bool() {
		t.Error("isnan(NaN) should be true")
	}
	if !callIsInf([]value.Value{num(math.Inf(1))}, nil).Bool() {
		t.Error("isinf(Inf) should be true")
	}
	if callIsInf([]value.Value{num(1)}, nil).Bool() {
		t.Error("isinf(1) should be false")
	}
}

func TestRelationalAndEquality(t *testing.T) {
	if !opLess([]value.Value{num(1), num(2)}, nil).Bool() {
		t.Error("1 < 2 should be true")
	}
	s1, s2 := value.NewString("abc"), value.NewString("abd")
	if !opLess([]value.Value{s1, s2}, nil).Bool() {
		t.Error(`"abc" < "abd" should be true`)
	}
	if got := opEq([]value.Value{num(1), s1}, nil); got.Kind != value.KindError || got.ErrKind() != value.ErrValue {
		t.Errorf("1 == \"abc\" should be a value error, got %#v", got)
	}
	if !opEq([]value.Value{value.NewBool(true), value.NewBool(true)}, nil).Bool() {
		t.Error("true == true should be true")
	}
}

func TestLogicalOperators(t *testing.T) {
	tru, fls := value.NewBool(true), value.NewBool(false)
	if !opAnd([]value.Value{tru, tru}, nil).Bool() {
		t.Error("true && true should be true")
	}
	if opAnd([]value.Value{tru, fls}, nil).Bool() {
		t.Error("true && false should be false")
	}
	if !opOr([]value.Value{fls, tru}, nil).Bool() {
		t.Error("false || true should be true")
	}
}

func TestIfelseDoesNotPropagateUnselectedBranchError(t *testing.T) {
	divError := value.NewError(value.ErrDivByZero)
	got := callIfelse([]value.Value{value.NewBool(true), value.NewString("div0"), divError}, nil)
	if got.Kind != value.KindString || got.Str() != "div0" {
		t.Fatalf("ifelse(true, \"div0\", <error>) = %#v, want string div0", got)
	}
}

func TestStringBuiltins(t *testing.T) {
	buf := make([]byte, 64)
	ar := value.NewArena(buf)

	trimmed := callTrim([]value.Value{value.NewString("  hi  ")}, ar)
	if trimmed.Str() != "hi" {
		t.Errorf("trim = %q", trimmed.Str())
	}

	upper := callUpper([]value.Value{value.NewString("Bob")}, ar)
	if upper.Str() != "BOB" {
		t.Errorf("upper = %q", upper.Str())
	}

	found := callFind([]value.Value{value.NewString("hello"), value.NewString("ll")}, nil)
	if found.Number() != 2 {
		t.Errorf("find = %v", found.Number())
	}

	sub := callSubstr([]value.Value{value.NewString("hello"), num(1), num(3)}, ar)
	if sub.Str() != "ell" {
		t.Errorf("substr = %q", sub.Str())
	}

	unesc := callUnescape([]value.Value{value.NewString(`a\nb\qc`)}, ar)
	if unesc.Str() != "a\nb\\qc" {
		t.Errorf("unescape = %q, want unknown escapes verbatim", unesc.Str())
	}
}

func TestStrConversions(t *testing.T) {
	ar := value.NewArena(make([]byte, 64))
	if got := callStr([]value.Value{value.NewBool(true)}, ar); got.Str() != "true" {
		t.Errorf("str(true) = %q", got.Str())
	}
	if got := callStr([]value.Value{num(3.5)}, ar); got.Str() != "3.5" {
		t.Errorf("str(3.5) = %q", got.Str())
	}
}

func TestVariableFunctionWithoutResolver(t *testing.T) {
	got := callVariable([]value.Value{value.NewString("x")}, nil)
	if got.Kind != value.KindError || got.ErrKind() != value.ErrReference {
		t.Errorf("variable(\"x\") without resolver = %#v, want reference error", got)
	}
}

func TestVariableFunctionWithResolver(t *testing.T) {
	ar := value.NewArena(make([]byte, 16))
	ar.Resolve = func(name string) value.Value {
		if name == "x" {
			return num(42)
		}
		return value.NewError(value.ErrReference)
	}
	got := callVariable([]value.Value{value.NewString("x")}, ar)
	if got.Number() != 42 {
		t.Errorf("variable(\"x\") = %#v, want 42", got)
	}
}

func TestFunctionsAndOperatorsTableComplete(t *testing.T) {
	funcs := Functions()
	if len(funcs) != 34 {
		t.Errorf("Functions() has %d entries, want 34", len(funcs))
	}
	ops := Operators()
	if len(ops) != 14 {
		t.Errorf("Operators() has %d entries, want 14", len(ops))
	}
	for tt, f := range funcs {
		if f.IsOperator() {
			t.Errorf("function token %v unexpectedly has operator precedence", tt)
		}
	}
	for tt, f := range ops {
		if !f.IsOperator() {
			t.Errorf("operator token %v has zero precedence", tt)
		}
	}
}
