package value

import "testing"

func TestErrorKindBlocking(t *testing.T) {
	tests := []struct {
		kind    ErrorKind
		blocked bool
	}{
		{ErrGeneric, true},
		{ErrSyntax, true},
		{ErrMemory, true},
		{ErrEvaluation, true},
		{ErrCircular, true},
		{ErrReference, false},
		{ErrNaN, false},
		{ErrHuge, false},
		{ErrDivByZero, false},
		{ErrValue, false},
	}
	for _, tt := range tests {
		if got := tt.kind.Blocking(); got != tt.blocked {
			t.Errorf("%s.Blocking() = %v, want %v", tt.kind, got, tt.blocked)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{NewBool(true), true},
		{NewNumber(1), true},
		{NewDatetime(0), true},
		{NewString("x"), true},
		{NewVariable("x"), false},
		{NewError(ErrGeneric), false},
		{Null(), false},
	}
	for _, tt := range tests {
		if got := tt.v.IsLiteral(); got != tt.want {
			t.Errorf("%#v.IsLiteral() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestWorkspacePushPopBoundary(t *testing.T) {
	ws := NewWorkspace(2)
	if !ws.PushOutput(NewNumber(1)) {
		t.Fatal("expected room for first push")
	}
	if !ws.PushOperator(Null()) {
		t.Fatal("expected room for second push")
	}
	if ws.PushOutput(NewNumber(2)) {
		t.Fatal("expected out-of-memory on third push")
	}
	if ws.OutLen() != 1 || ws.OpLen() != 1 {
		t.Fatalf("unexpected lengths out=%d op=%d", ws.OutLen(), ws.OpLen())
	}
}

func TestArenaAllocAndRelease(t *testing.T) {
	buf := make([]byte, 32)
	ar := NewArena(buf)

	lower, ok := ar.Alloc("hello")
	if !ok {
		t.Fatal("expected allocation to succeed")
	}
	if !lower.IsTemporary() {
		t.Fatal("expected arena-allocated value to be temporary")
	}

	upper, ok := ar.Alloc("HELLO")
	if !ok {
		t.Fatal("expected second allocation to succeed")
	}

	// upper reuses its own storage as the "result"; lower must be released.
	ar.Release([]Value{lower}, upper)
	if ar.cursor != len(buf)-len("HELLO") {
		t.Fatalf("expected lower's storage reclaimed, cursor=%d", ar.cursor)
	}
}

func TestArenaAllocOutOfMemory(t *testing.T) {
	ar := NewArena(make([]byte, 2))
	if _, ok := ar.Alloc("too long"); ok {
		t.Fatal("expected allocation to fail when it exceeds arena capacity")
	}
}
