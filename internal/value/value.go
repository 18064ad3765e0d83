// Package value implements the tagged-union Value type shared by the
// lexer, parser, and evaluator: booleans, numbers, datetimes, strings,
// variable references, function references, and errors.
package value

import "fmt"

// Kind identifies which field of a Value is meaningful.
type Kind uint8

const (
	// KindNull is used only as the shunting-yard operator-stack sentinel
	// for an unmatched '('. It never appears in a compiled instruction
	// stream.
	KindNull Kind = iota
	KindBool
	KindNumber
	KindDatetime
	KindString
	KindVariable
	KindFunction
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindDatetime:
		return "datetime"
	case KindString:
		return "string"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrorKind enumerates the error taxonomy of spec §7.
type ErrorKind uint8

const (
	ErrNone ErrorKind = iota
	ErrGeneric
	ErrSyntax
	ErrMemory
	ErrEvaluation
	ErrCircular
	ErrReference
	ErrNaN
	ErrHuge
	ErrDivByZero
	ErrValue
)

func (e ErrorKind) String() string {
	switch e {
	case ErrNone:
		return "ok"
	case ErrGeneric:
		return "generic"
	case ErrSyntax:
		return "syntax"
	case ErrMemory:
		return "memory"
	case ErrEvaluation:
		return "evaluation"
	case ErrCircular:
		return "circular-reference"
	case ErrReference:
		return "reference"
	case ErrNaN:
		return "nan"
	case ErrHuge:
		return "huge"
	case ErrDivByZero:
		return "div-by-zero"
	case ErrValue:
		return "value"
	default:
		return "unknown"
	}
}

// Blocking reports whether e aborts compilation/evaluation immediately
// (spec §7). Non-blocking errors travel as ordinary values instead.
func (e ErrorKind) Blocking() bool {
	switch e {
	case ErrGeneric, ErrSyntax, ErrMemory, ErrEvaluation, ErrCircular:
		return true
	default:
		return false
	}
}

// Value is the tagged union of every value this language can produce.
// Arena-owned strings are tracked through arenaMark rather than raw
// pointer arithmetic: 0 means "not arena-owned", any other value is the
// byte offset (plus one) at which the string was allocated in its Arena,
// used to order ownership during the slide-release in Release (see
// arena.go).
type Value struct {
	Kind Kind

	boolVal     bool
	numberVal   float64
	datetimeVal uint64
	str         string
	err         ErrorKind
	fn          *Func

	arenaMark int
}

// Bool returns the boolean payload; zero value if Kind != KindBool.
func (v Value) Bool() bool { return v.boolVal }

// Number returns the float64 payload; zero value if Kind != KindNumber.
func (v Value) Number() float64 { return v.numberVal }

// Datetime returns the epoch-millis payload; zero value if Kind != KindDatetime.
func (v Value) Datetime() uint64 { return v.datetimeVal }

// Str returns the string payload for KindString and the variable name
// for KindVariable.
func (v Value) Str() string { return v.str }

// ErrKind returns the error kind; ErrNone if Kind != KindError.
func (v Value) ErrKind() ErrorKind { return v.err }

// Func returns the function descriptor; nil if Kind != KindFunction.
func (v Value) Func() *Func { return v.fn }

// IsLiteral reports whether v is a concrete literal value (bool, number,
// datetime, or string) as opposed to a variable, function, error, or the
// null sentinel. Only literals are eligible operands for constant folding.
func (v Value) IsLiteral() bool {
	switch v.Kind {
	case KindBool, KindNumber, KindDatetime, KindString:
		return true
	default:
		return false
	}
}

// Null returns the operator-stack '(' sentinel.
func Null() Value { return Value{Kind: KindNull} }

// NewBool returns a boolean literal value.
func NewBool(b bool) Value { return Value{Kind: KindBool, boolVal: b} }

// NewNumber returns a number literal value.
func NewNumber(n float64) Value { return Value{Kind: KindNumber, numberVal: n} }

// NewDatetime returns a datetime literal value (epoch milliseconds).
func NewDatetime(ms uint64) Value { return Value{Kind: KindDatetime, datetimeVal: ms} }

// NewString returns a string literal value. The string is not arena-owned.
func NewString(s string) Value { return Value{Kind: KindString, str: s} }

// NewVariable returns a variable-reference value naming the given variable.
func NewVariable(name string) Value { return Value{Kind: KindVariable, str: name} }

// NewFunction returns a function-reference value wrapping fn.
func NewFunction(fn *Func) Value { return Value{Kind: KindFunction, fn: fn} }

// NewError returns an error value of the given kind.
func NewError(kind ErrorKind) Value { return Value{Kind: KindError, err: kind} }

// Caller is the erased calling convention for every builtin and operator:
// it receives its already-popped arguments in left-to-right order and an
// Arena to allocate fresh string results from. The evaluator passes its
// arena to every call; the compile-time folder, which only calls pure
// functions, passes nil.
type Caller func(args []Value, ar *Arena) Value

// Func is the evaluator record for a symbol: function pointer, arity,
// precedence, associativity, and purity (spec §4.2, §9 "erased function
// descriptors").
type Func struct {
	Name       string
	Call       Caller
	Arity      uint8
	Precedence uint8 // 0 means "regular function", >0 means "operator"
	RightAssoc bool
	Pure       bool
}

// IsOperator reports whether fn was lexed as an operator token rather
// than a named function call.
func (fn *Func) IsOperator() bool { return fn.Precedence > 0 }

// GoString renders a Value for debugging (instruction-stream dumps, CLI
// "parse" output).
func (v Value) GoString() string {
	switch v.Kind {
	case KindNull:
		return "("
	case KindBool:
		return fmt.Sprintf("%t", v.boolVal)
	case KindNumber:
		return fmt.Sprintf("%g", v.numberVal)
	case KindDatetime:
		return fmt.Sprintf("datetime(%d)", v.datetimeVal)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindVariable:
		return "$" + v.str
	case KindFunction:
		return v.fn.Name
	case KindError:
		return "error(" + v.err.String() + ")"
	default:
		return "?"
	}
}
