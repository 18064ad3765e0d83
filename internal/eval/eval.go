// Package eval implements component C6 (spec §4.6): the postfix evaluator
// that walks a compiled instruction stream against a live Resolver,
// producing a single result value.
package eval

import "github.com/exprlang/exprc/internal/value"

// EvalError reports a blocking failure during evaluation (spec §7):
// operand-stack exhaustion, a malformed instruction stream, a blocking
// error returned by a function call (such as arena exhaustion), or a
// host-reported evaluation/circular-reference failure surfacing from a
// variable resolution.
type EvalError struct {
	Kind    value.ErrorKind
	Message string
}

func (e *EvalError) Error() string { return e.Message }

// Run evaluates instructions — the parser's compiled postfix stream —
// against ar (whose Resolve callback supplies variable values), using
// scratch purely as a plain operand stack (spec §3: "the same type is
// reused, reset, as the plain operand stack during evaluation"). scratch
// is reset on entry; instructions itself is read-only and may be
// evaluated against it repeatedly with different ar bindings.
func Run(instructions []value.Value, scratch *value.Workspace, ar *value.Arena) (value.Value, *EvalError) {
	scratch.Reset()

	for _, instr := range instructions {
		switch instr.Kind {
		case value.KindFunction:
			fn := instr.Func()
			n := int(fn.Arity)
			out := scratch.Output()
			if len(out) < n {
				return value.Value{}, &EvalError{Kind: value.ErrGeneric, Message: "instruction stream underflow"}
			}
			// args aliases scratch's backing array; valid until the
			// SetOutput below overwrites those same slots, by which point
			// both Call and Release have already read everything they need.
			args := out[len(out)-n:]

			result := fn.Call(args, ar)
			if result.Kind == value.KindError && result.ErrKind().Blocking() {
				return value.Value{}, &EvalError{Kind: result.ErrKind(), Message: "function " + fn.Name + " failed: " + result.ErrKind().String()}
			}
			if ar != nil {
				ar.Release(args, result)
			}
			scratch.SetOutput(n, result)

		case value.KindVariable:
			var resolved value.Value
			if ar == nil || ar.Resolve == nil {
				resolved = value.NewError(value.ErrReference)
			} else {
				resolved = ar.Resolve(instr.Str())
				if resolved.Kind == value.KindError && resolved.ErrKind().Blocking() {
					return value.Value{}, &EvalError{Kind: resolved.ErrKind(), Message: "variable resolution failed: " + instr.Str()}
				}
			}
			if !scratch.PushOutput(resolved) {
				return value.Value{}, &EvalError{Kind: value.ErrMemory, Message: "operand stack exhausted"}
			}

		default:
			// Literal (bool/number/datetime/string) or already-propagated
			// error value: push as-is.
			if !scratch.PushOutput(instr) {
				return value.Value{}, &EvalError{Kind: value.ErrMemory, Message: "operand stack exhausted"}
			}
		}
	}

	if scratch.OutLen() != 1 {
		return value.Value{}, &EvalError{Kind: value.ErrGeneric, Message: "instruction stream did not reduce to one value"}
	}
	v, _ := scratch.TopOutput()
	return v, nil
}
