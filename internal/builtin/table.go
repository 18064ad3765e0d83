package builtin

import (
	"math"

	"github.com/exprlang/exprc/internal/token"
	"github.com/exprlang/exprc/internal/value"
)

func fn(name string, arity uint8, pure bool, call value.Caller) *value.Func {
	return &value.Func{Name: name, Call: call, Arity: arity, Pure: pure}
}

func op(name string, arity uint8, prec uint8, rightAssoc, pure bool, call value.Caller) *value.Func {
	return &value.Func{Name: name, Call: call, Arity: arity, Precedence: prec, RightAssoc: rightAssoc, Pure: pure}
}

// Literals maps constant/keyword tokens to the literal value they denote
// (spec §4.2: "a parallel dense map from symbol kind to ... a literal
// value"). These never go through a Func; the parser substitutes them
// directly into the output stack.
func Literals() map[token.Type]value.Value {
	return map[token.Type]value.Value{
		token.KW_TRUE:   value.NewBool(true),
		token.KW_FALSE:  value.NewBool(false),
		token.CONST_PI:  value.NewNumber(math.Pi),
		token.CONST_E:   value.NewNumber(math.E),
		token.CONST_INF: value.NewNumber(math.Inf(1)),
		token.CONST_NAN: value.NewNumber(math.NaN()),
	}
}

// Functions maps every regular (precedence-0) function token to its
// descriptor (spec §4's builtin catalog, supplemented from
// original_source/expr.c — see SPEC_FULL.md §4).
func Functions() map[token.Type]*value.Func {
	return map[token.Type]*value.Func{
		token.FUNC_ABS:   fn("abs", 1, true, callAbs),
		token.FUNC_CEIL:  fn("ceil", 1, true, callCeil),
		token.FUNC_FLOOR: fn("floor", 1, true, callFloor),
		token.FUNC_TRUNC: fn("trunc", 1, true, callTrunc),
		token.FUNC_SQRT:  fn("sqrt", 1, true, callSqrt),
		token.FUNC_EXP:   fn("exp", 1, true, callExp),
		token.FUNC_LOG:   fn("log", 1, true, callLog),
		token.FUNC_SIN:   fn("sin", 1, true, callSin),
		token.FUNC_COS:   fn("cos", 1, true, callCos),
		token.FUNC_TAN:   fn("tan", 1, true, callTan),
		token.FUNC_POW:   fn("pow", 2, true, callPow),
		token.FUNC_MIN:   fn("min", 2, true, callMin),
		token.FUNC_MAX:   fn("max", 2, true, callMax),
		token.FUNC_CLAMP: fn("clamp", 3, true, callClamp),
		token.FUNC_MOD:   fn("mod", 2, true, callMod),
		token.FUNC_ISNAN: fn("isnan", 1, true, callIsNaN),
		token.FUNC_ISINF: fn("isinf", 1, true, callIsInf),

		token.FUNC_LENGTH:   fn("length", 1, true, callLength),
		token.FUNC_FIND:     fn("find", 2, true, callFind),
		token.FUNC_TRIM:     fn("trim", 1, false, callTrim),
		token.FUNC_UPPER:    fn("upper", 1, false, callUpper),
		token.FUNC_LOWER:    fn("lower", 1, false, callLower),
		token.FUNC_SUBSTR:   fn("substr", 3, false, callSubstr),
		token.FUNC_REPLACE:  fn("replace", 3, false, callReplace),
		token.FUNC_UNESCAPE: fn("unescape", 1, false, callUnescape),
		token.FUNC_STR:      fn("str", 1, false, callStr),

		token.FUNC_DATEPART:  fn("datepart", 2, true, callDatepart),
		token.FUNC_DATEADD:   fn("dateadd", 3, true, callDateadd),
		token.FUNC_DATETRUNC: fn("datetrunc", 2, true, callDatetrunc),
		token.FUNC_DATESET:   fn("dateset", 3, true, callDateset),
		token.FUNC_NOW:       fn("now", 0, false, callNow),

		token.FUNC_IFELSE:   fn("ifelse", 3, true, callIfelse),
		token.FUNC_ISERROR:  fn("iserror", 1, true, callIserror),
		token.FUNC_VARIABLE: fn("variable", 1, false, callVariable),
	}
}

// Operators maps every operator token to its binary descriptor, used by
// expr_number/expr_bool/expr_datetime. expr_string instead uses Concat for
// token.PLUS (spec §4.3: "+ reclassified to concat inside expr_string").
func Operators() map[token.Type]*value.Func {
	return map[token.Type]*value.Func{
		token.CARET:      op("^", 2, precPower, true, true, opPow),
		token.ASTERISK:   op("*", 2, precMul, false, true, opMul),
		token.SLASH:      op("/", 2, precMul, false, true, opDiv),
		token.PERCENT:    op("%", 2, precMul, false, true, callMod),
		token.PLUS:       op("+", 2, precAdd, false, true, opAdd),
		token.MINUS:      op("-", 2, precAdd, false, true, opSub),
		token.LESS:       op("<", 2, precRel, false, true, opLess),
		token.LESS_EQ:    op("<=", 2, precRel, false, true, opLessEq),
		token.GREATER:    op(">", 2, precRel, false, true, opGreater),
		token.GREATER_EQ: op(">=", 2, precRel, false, true, opGreaterEq),
		token.EQ_EQ:      op("==", 2, precEq, false, true, opEq),
		token.NOT_EQ:     op("!=", 2, precEq, false, true, opNotEq),
		token.AND_AND:    op("&&", 2, precAnd, false, true, opAnd),
		token.OR_OR:      op("||", 2, precOr, false, true, opOr),
	}
}

// UnaryPlus and UnaryMinus are the reclassified sign operators (spec
// §4.3/§4.5): precedence 3, right-associative, and — for UnaryPlus — the
// identity the simplifier drops without computing.
var UnaryPlus = op("+", 1, precSign, true, true, opUnaryPlus)
var UnaryMinus = op("-", 1, precSign, true, true, opUnaryMinus)

// Concat is '+' reclassified for string operands (spec §4.3); impure
// because it always writes through the arena (see opConcat).
var Concat = op("+", 2, precAdd, false, false, opConcat)
