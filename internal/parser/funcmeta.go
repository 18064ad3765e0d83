package parser

import (
	"github.com/exprlang/exprc/internal/token"
	"github.com/exprlang/exprc/internal/value"
)

// argKind classifies how a function's parenthesized argument is parsed,
// distinct from value.Kind because three shapes have no runtime counterpart:
// argAny (str/iserror's fully generic argument, spec §4.3) and argDatepart
// (the closed-set datepart literal, spec §4.3, rewritten to a number at
// parse time rather than parsed as a string expression) and argContext
// (ifelse's branches, which take on the kind of the call site itself).
type argKind int

const (
	argNumber argKind = iota
	argBool
	argDatetime
	argString
	argAny
	argContext
	argDatepart
)

// anyReturn marks a function whose result kind is determined by the
// calling context rather than fixed (ifelse, variable), so it is a valid
// atom inside any of the four expr_* routines.
const anyReturn value.Kind = 255

type funcMeta struct {
	Args   []argKind
	Return value.Kind
}

// funcTable mirrors builtin.Functions()'s catalog with the argument-type
// and return-type contract of spec §4.3 the parser needs to decide, for
// any function token, which term routine(s) may parse it and how each of
// its arguments should be parsed.
var funcTable = map[token.Type]funcMeta{
	token.FUNC_ABS:   {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_CEIL:  {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_FLOOR: {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_TRUNC: {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_SQRT:  {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_EXP:   {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_LOG:   {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_SIN:   {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_COS:   {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_TAN:   {Args: []argKind{argNumber}, Return: value.KindNumber},
	token.FUNC_POW:   {Args: []argKind{argNumber, argNumber}, Return: value.KindNumber},
	token.FUNC_MIN:   {Args: []argKind{argNumber, argNumber}, Return: value.KindNumber},
	token.FUNC_MAX:   {Args: []argKind{argNumber, argNumber}, Return: value.KindNumber},
	token.FUNC_CLAMP: {Args: []argKind{argNumber, argNumber, argNumber}, Return: value.KindNumber},
	token.FUNC_MOD:   {Args: []argKind{argNumber, argNumber}, Return: value.KindNumber},
	token.FUNC_ISNAN: {Args: []argKind{argNumber}, Return: value.KindBool},
	token.FUNC_ISINF: {Args: []argKind{argNumber}, Return: value.KindBool},

	token.FUNC_LENGTH:   {Args: []argKind{argString}, Return: value.KindNumber},
	token.FUNC_FIND:     {Args: []argKind{argString, argString}, Return: value.KindNumber},
	token.FUNC_TRIM:     {Args: []argKind{argString}, Return: value.KindString},
	token.FUNC_UPPER:    {Args: []argKind{argString}, Return: value.KindString},
	token.FUNC_LOWER:    {Args: []argKind{argString}, Return: value.KindString},
	token.FUNC_SUBSTR:   {Args: []argKind{argString, argNumber, argNumber}, Return: value.KindString},
	token.FUNC_REPLACE:  {Args: []argKind{argString, argString, argString}, Return: value.KindString},
	token.FUNC_UNESCAPE: {Args: []argKind{argString}, Return: value.KindString},
	token.FUNC_STR:      {Args: []argKind{argAny}, Return: value.KindString},

	token.FUNC_DATEPART:   {Args: []argKind{argDatetime, argDatepart}, Return: value.KindNumber},
	token.FUNC_DATEADD:    {Args: []argKind{argDatetime, argNumber, argDatepart}, Return: value.KindDatetime},
	token.FUNC_DATETRUNC:  {Args: []argKind{argDatetime, argDatepart}, Return: value.KindDatetime},
	token.FUNC_DATESET:    {Args: []argKind{argDatetime, argNumber, argDatepart}, Return: value.KindDatetime},
	token.FUNC_NOW:        {Args: nil, Return: value.KindDatetime},

	token.FUNC_IFELSE:   {Args: []argKind{argBool, argContext, argContext}, Return: anyReturn},
	token.FUNC_ISERROR:  {Args: []argKind{argAny}, Return: value.KindBool},
	token.FUNC_VARIABLE: {Args: []argKind{argString}, Return: anyReturn},
}

// acceptsKind reports whether a call to tok is a valid atom when the
// enclosing term routine expects result kind want.
func acceptsKind(tok token.Type, want value.Kind) bool {
	m, ok := funcTable[tok]
	if !ok {
		return false
	}
	return m.Return == want || m.Return == anyReturn
}
