package builtin

import (
	"github.com/exprlang/exprc/internal/value"
)

// Operator precedence, spec §4.2: "smaller binds tighter".
const (
	precPower = 2
	precSign  = 3 // reclassified unary +/-, right-assoc
	precMul   = 4
	precAdd   = 5
	precRel   = 6
	precEq    = 7
	precAnd   = 8
	precOr    = 9
)

func opAdd(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindNumber, value.KindNumber); ok {
		return v
	}
	return checkFloat(args[0].Number() + args[1].Number())
}

func opSub(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindNumber, value.KindNumber); ok {
		return v
	}
	return checkFloat(args[0].Number() - args[1].Number())
}

func opMul(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindNumber, value.KindNumber); ok {
		return v
	}
	return checkFloat(args[0].Number() * args[1].Number())
}

func opDiv(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindNumber, value.KindNumber); ok {
		return v
	}
	a, b := args[0].Number(), args[1].Number()
	if b == 0 {
		return value.NewError(value.ErrDivByZero)
	}
	return checkFloat(a / b)
}

func opPow(args []value.Value, _ *value.Arena) value.Value {
	return callPow(args, nil)
}

// opUnaryPlus is the identity wrapper the simplifier (spec §4.5) drops
// without computing; kept as a real Caller so non-folded occurrences (a
// variable operand, say) still evaluate correctly.
func opUnaryPlus(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindNumber); ok {
		return v
	}
	return value.NewNumber(args[0].Number())
}

func opUnaryMinus(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindNumber); ok {
		return v
	}
	return checkFloat(-args[0].Number())
}

// opConcat is '+' reclassified inside expr_string (spec §4.3), a distinct
// descriptor from the numeric opAdd even though both lex as token.PLUS.
func opConcat(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString, value.KindString); ok {
		return v
	}
	return allocOrError(ar, args[0].Str()+args[1].Str())
}

func opAnd(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindBool, value.KindBool); ok {
		return v
	}
	return value.NewBool(args[0].Bool() && args[1].Bool())
}

func opOr(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindBool, value.KindBool); ok {
		return v
	}
	return value.NewBool(args[0].Bool() || args[1].Bool())
}

// compare orders two like-kind literal values; ok is false for kinds that
// have no ordering (bool, or a kind mismatch), which relational operators
// other than ==/!= report as a generic value error.
func compare(a, b value.Value) (cmp int, ok bool) {
	if a.Kind != b.Kind {
		return 0, false
	}
	switch a.Kind {
	case value.KindNumber:
		switch {
		case a.Number() < b.Number():
			return -1, true
		case a.Number() > b.Number():
			return 1, true
		default:
			return 0, true
		}
	case value.KindDatetime:
		switch {
		case a.Datetime() < b.Datetime():
			return -1, true
		case a.Datetime() > b.Datetime():
			return 1, true
		default:
			return 0, true
		}
	case value.KindString:
		switch {
		case a.Str() < b.Str():
			return -1, true
		case a.Str() > b.Str():
			return 1, true
		default:
			return 0, true
		}
	default:
		return 0, false
	}
}

func relational(pick func(cmp int) bool) value.Caller {
	return func(args []value.Value, _ *value.Arena) value.Value {
		if v, ok := propagate(args); ok {
			return v
		}
		cmp, ok := compare(args[0], args[1])
		if !ok {
			return value.NewError(value.ErrValue)
		}
		return value.NewBool(pick(cmp))
	}
}

var opLess = relational(func(c int) bool { return c < 0 })
var opLessEq = relational(func(c int) bool { return c <= 0 })
var opGreater = relational(func(c int) bool { return c > 0 })
var opGreaterEq = relational(func(c int) bool { return c >= 0 })

func equalValues(a, b value.Value) (bool, bool) {
	if a.Kind != b.Kind {
		return false, false
	}
	if a.Kind == value.KindBool {
		return a.Bool() == b.Bool(), true
	}
	cmp, ok := compare(a, b)
	if !ok {
		return false, false
	}
	return cmp == 0, true
}

func opEq(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := propagate(args); ok {
		return v
	}
	eq, ok := equalValues(args[0], args[1])
	if !ok {
		return value.NewError(value.ErrValue)
	}
	return value.NewBool(eq)
}

func opNotEq(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := propagate(args); ok {
		return v
	}
	eq, ok := equalValues(args[0], args[1])
	if !ok {
		return value.NewError(value.ErrValue)
	}
	return value.NewBool(!eq)
}
