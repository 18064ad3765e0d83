package builtin

import "github.com/exprlang/exprc/internal/value"

// callIfelse does not use propagate: only the condition's error status
// short-circuits to an error result. The branch not selected may itself be
// an error value (spec §8 scenario 4, "ifelse(iserror(1/0), ..., str(1/0))")
// and must be discarded silently, not propagated.
func callIfelse(args []value.Value, _ *value.Arena) value.Value {
	cond := args[0]
	if cond.Kind == value.KindError {
		return cond
	}
	if cond.Kind != value.KindBool {
		return value.NewError(value.ErrValue)
	}
	if cond.Bool() {
		return args[1]
	}
	return args[2]
}

// callIserror is the sole exception to error propagation (spec §7):
// mapping any error kind to true is what makes errors observable at all.
func callIserror(args []value.Value, _ *value.Arena) value.Value {
	return value.NewBool(args[0].Kind == value.KindError)
}

// callVariable resolves a name computed at evaluation time, as opposed to
// the $name/${name} lexical shorthand (spec §4.1) which the evaluator
// resolves directly. Reports reference-unresolved if no resolver was
// supplied to this evaluation.
func callVariable(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString); ok {
		return v
	}
	if ar == nil || ar.Resolve == nil {
		return value.NewError(value.ErrReference)
	}
	return ar.Resolve(args[0].Str())
}
