// Package builtin implements the Caller functions and the symbol table of
// spec §4.2: every constant, operator, and named function reachable from
// internal/token's identifier table, keyed the same way the parser and
// evaluator look symbols up by token.Type.
package builtin

import (
	"math"

	"github.com/exprlang/exprc/internal/value"
)

// propagate inspects args left-to-right and reports the first error value
// found, per spec §7: "functions receiving an error argument generally
// return that error unchanged". ifelse and iserror are the two exceptions
// and implement their own argument handling instead of calling this.
func propagate(args []value.Value) (value.Value, bool) {
	for _, a := range args {
		if a.Kind == value.KindError {
			return a, true
		}
	}
	return value.Value{}, false
}

// checkKinds propagates any error argument first, then verifies args[i] has
// kind kinds[i] for each given position; a mismatch (typically a $variable
// that resolved to a runtime kind the call site didn't expect — the parser
// cannot know a variable's kind until evaluation) reports a generic value
// error rather than silently reading a zero-value field.
func checkKinds(args []value.Value, kinds ...value.Kind) (value.Value, bool) {
	if v, ok := propagate(args); ok {
		return v, true
	}
	for i, k := range kinds {
		if args[i].Kind != k {
			return value.NewError(value.ErrValue), true
		}
	}
	return value.Value{}, false
}

// checkFloat converts a computed float64 result into a Number, or into the
// nan/huge value-error when the result is not finite. Spec §7 distinguishes
// "runtime arithmetic overflow" (huge) from literal IEEE special values
// (Inf/NaN constants, which are ordinary representable numbers); this
// distinction is implemented by applying checkFloat only to true arithmetic
// (operators and transcendental functions) and never to selection/rounding
// functions (abs, ceil, floor, trunc, min, max, clamp), which pass their
// IEEE input through unchanged. See DESIGN.md for this Open Question call.
func checkFloat(f float64) value.Value {
	switch {
	case math.IsNaN(f):
		return value.NewError(value.ErrNaN)
	case math.IsInf(f, 0):
		return value.NewError(value.ErrHuge)
	default:
		return value.NewNumber(f)
	}
}
