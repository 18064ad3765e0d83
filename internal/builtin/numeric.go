package builtin

import (
	"math"

	"github.com/exprlang/exprc/internal/value"
)

var numKind = value.KindNumber

func number1(f func(float64) float64) value.Caller {
	return func(args []value.Value, _ *value.Arena) value.Value {
		if v, ok := checkKinds(args, numKind); ok {
			return v
		}
		return checkFloat(f(args[0].Number()))
	}
}

// Abs, ceil, floor, and trunc are selection/rounding, not arithmetic: their
// IEEE result passes through unconverted (see checkFloat's doc comment).
func callAbs(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind); ok {
		return v
	}
	return value.NewNumber(math.Abs(args[0].Number()))
}

func callCeil(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind); ok {
		return v
	}
	return value.NewNumber(math.Ceil(args[0].Number()))
}

func callFloor(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind); ok {
		return v
	}
	return value.NewNumber(math.Floor(args[0].Number()))
}

func callTrunc(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind); ok {
		return v
	}
	return value.NewNumber(math.Trunc(args[0].Number()))
}

var callSqrt = number1(math.Sqrt)
var callExp = number1(math.Exp)
var callLog = number1(math.Log)
var callSin = number1(math.Sin)
var callCos = number1(math.Cos)
var callTan = number1(math.Tan)

func callPow(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind, numKind); ok {
		return v
	}
	return checkFloat(math.Pow(args[0].Number(), args[1].Number()))
}

func callMin(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind, numKind); ok {
		return v
	}
	return value.NewNumber(math.Min(args[0].Number(), args[1].Number()))
}

func callMax(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind, numKind); ok {
		return v
	}
	return value.NewNumber(math.Max(args[0].Number(), args[1].Number()))
}

func callClamp(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind, numKind, numKind); ok {
		return v
	}
	x, lo, hi := args[0].Number(), args[1].Number(), args[2].Number()
	return value.NewNumber(math.Min(math.Max(x, lo), hi))
}

// callMod implements the mod() function and the reclassified '%' operator
// identically: fmod semantics, with the zero divisor reported as
// div-by-zero rather than IEEE NaN (spec §7 example scenario 4 treats
// "1/0" the same way for '/').
func callMod(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind, numKind); ok {
		return v
	}
	a, b := args[0].Number(), args[1].Number()
	if b == 0 {
		return value.NewError(value.ErrDivByZero)
	}
	return checkFloat(math.Mod(a, b))
}

func callIsNaN(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind); ok {
		return v
	}
	return value.NewBool(math.IsNaN(args[0].Number()))
}

func callIsInf(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, numKind); ok {
		return v
	}
	return value.NewBool(math.IsInf(args[0].Number(), 0))
}
