package parser

import (
	"github.com/exprlang/exprc/internal/builtin"
	"github.com/exprlang/exprc/internal/literal"
	"github.com/exprlang/exprc/internal/token"
	"github.com/exprlang/exprc/internal/value"
)

// expr.go implements component C3: the four mutually recursive
// descent routines, one per expression type (spec §4.3). Each parses a
// term and then an optional trailing chain of same-type binary operators;
// expr_bool's term additionally absorbs relational/equality comparisons,
// since "<", "<=", ">", ">=", "==", "!=" take number/datetime/string
// operands but produce a bool result (bool operands are not accepted; see
// comparisonOperandOrder).

var functions = builtin.Functions()
var operators = builtin.Operators()
var literals = builtin.Literals()
var unescapeFunc = functions[token.FUNC_UNESCAPE]

func isRelational(tt token.Type) bool {
	switch tt {
	case token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ, token.EQ_EQ, token.NOT_EQ:
		return true
	default:
		return false
	}
}

// sameKindOperator reports the operator descriptor for tt when it chains
// two operands of kind (spec §4.2's per-routine operator subset): this is
// never the relational/equality set, which only ever appears inside a
// comparison (see (*Parser).comparison).
func sameKindOperator(kind value.Kind, tt token.Type) (*value.Func, bool) {
	switch kind {
	case value.KindNumber:
		switch tt {
		case token.CARET, token.ASTERISK, token.SLASH, token.PERCENT, token.PLUS, token.MINUS:
			return operators[tt], true
		}
	case value.KindString:
		if tt == token.PLUS {
			return builtin.Concat, true
		}
	case value.KindBool:
		switch tt {
		case token.AND_AND, token.OR_OR:
			return operators[tt], true
		}
	}
	return nil, false
}

// exprOfKind parses a term of kind, then zero or more (operator, term)
// pairs chained left-to-right, feeding every operand and operator straight
// into the shunting-yard driver.
func (p *Parser) exprOfKind(kind value.Kind) {
	p.term(kind)
	for p.err == nil {
		opFn, ok := sameKindOperator(kind, p.cur.Type)
		if !ok {
			return
		}
		p.next()
		p.yardPushOperator(opFn)
		if p.err != nil {
			return
		}
		p.term(kind)
	}
}

func (p *Parser) term(kind value.Kind) {
	switch kind {
	case value.KindNumber:
		p.termNumber()
	case value.KindBool:
		p.termBool()
	case value.KindDatetime:
		p.termDatetime()
	case value.KindString:
		p.termString()
	}
}

// termNumber peels any leading reclassified unary +/- signs (spec §4.3:
// recursive-descent naturally produces the "previous symbol was an
// operator" reclassification without tracking any extra state) before the
// core numeric atom.
func (p *Parser) termNumber() {
	for p.cur.Type == token.PLUS || p.cur.Type == token.MINUS {
		sign := builtin.UnaryPlus
		if p.cur.Type == token.MINUS {
			sign = builtin.UnaryMinus
		}
		p.next()
		p.yardPushOperator(sign)
		if p.err != nil {
			return
		}
	}
	p.numberAtom()
}

func (p *Parser) numberAtom() {
	switch p.cur.Type {
	case token.NUMBER:
		v, ok := literal.ParseNumber(p.cur.Literal)
		if !ok {
			v = value.NewError(value.ErrValue)
		}
		p.yardPushValue(v)
		p.next()
	case token.VARIABLE:
		p.yardPushValue(value.NewVariable(p.cur.Literal))
		p.next()
	case token.CONST_PI, token.CONST_E, token.CONST_INF, token.CONST_NAN:
		p.yardPushValue(literals[p.cur.Type])
		p.next()
	case token.LPAREN:
		p.parenthesized(value.KindNumber)
	default:
		if acceptsKind(p.cur.Type, value.KindNumber) {
			p.call(p.cur.Type, value.KindNumber)
			return
		}
		p.fail(value.ErrSyntax, "expected number expression, got %s", p.cur.Type)
	}
}

// termBool first tries a direct boolean atom; failing that (checkpointed
// and rolled back), it tries a relational/equality comparison over a
// number, datetime, or string sub-expression (spec §4.3).
func (p *Parser) termBool() {
	m := p.markState()
	p.boolAtom()
	if p.err == nil {
		return
	}
	p.restoreState(m)
	p.err = nil
	p.comparison()
}

func (p *Parser) boolAtom() {
	switch p.cur.Type {
	case token.KW_TRUE, token.KW_FALSE:
		p.yardPushValue(literals[p.cur.Type])
		p.next()
	case token.VARIABLE:
		p.yardPushValue(value.NewVariable(p.cur.Literal))
		p.next()
	case token.LPAREN:
		p.parenthesized(value.KindBool)
	default:
		if acceptsKind(p.cur.Type, value.KindBool) {
			p.call(p.cur.Type, value.KindBool)
			return
		}
		p.fail(value.ErrSyntax, "expected boolean expression, got %s", p.cur.Type)
	}
}

// comparisonOperandOrder excludes bool: a comparison's left operand is
// dispatched only over the three orderable/equatable kinds. Trying bool
// here would re-enter termBool, which falls back to comparison itself on
// a non-bool-atom token — an unbounded recursion for exactly the inputs
// (a bare number/datetime/string expression) comparison exists to handle.
// Equality between two bool sub-expressions is consequently not
// parseable, a deliberate scope trim over spec §4.2's relational/equality
// operand set.
var comparisonOperandOrder = []value.Kind{value.KindNumber, value.KindDatetime, value.KindString}

// comparison parses "<left> <relop> <right>" where left and right share
// whichever of {number, datetime, string} the left operand actually
// parses as (spec §4.3's generic-dispatch checkpointing, scoped to finding
// a comparable operand rather than a whole top-level expression).
func (p *Parser) comparison() {
	kind, err := p.dispatchGeneric(comparisonOperandOrder, func() bool { return isRelational(p.cur.Type) })
	if err != nil {
		p.err = err
		return
	}
	relFn := operators[p.cur.Type]
	p.next()
	p.yardPushOperator(relFn)
	if p.err != nil {
		return
	}
	p.exprOfKind(kind)
}

func (p *Parser) termDatetime() {
	switch p.cur.Type {
	case token.VARIABLE:
		p.yardPushValue(value.NewVariable(p.cur.Literal))
		p.next()
	case token.STRING, token.ESCAPED_STRING:
		v, ok := literal.ParseDatetime(p.cur.Literal)
		if !ok {
			p.fail(value.ErrSyntax, "not a valid datetime literal: %q", p.cur.Literal)
			return
		}
		p.yardPushValue(v)
		p.next()
	case token.LPAREN:
		p.parenthesized(value.KindDatetime)
	default:
		if acceptsKind(p.cur.Type, value.KindDatetime) {
			p.call(p.cur.Type, value.KindDatetime)
			return
		}
		p.fail(value.ErrSyntax, "expected datetime expression, got %s", p.cur.Type)
	}
}

func (p *Parser) termString() {
	switch p.cur.Type {
	case token.STRING:
		p.yardPushValue(value.NewString(p.cur.Literal))
		p.next()
	case token.ESCAPED_STRING:
		p.pushEscapedString(p.cur.Literal)
		if p.err != nil {
			return
		}
		p.next()
	case token.VARIABLE:
		p.yardPushValue(value.NewVariable(p.cur.Literal))
		p.next()
	case token.LPAREN:
		p.parenthesized(value.KindString)
	default:
		if acceptsKind(p.cur.Type, value.KindString) {
			p.call(p.cur.Type, value.KindString)
			return
		}
		p.fail(value.ErrSyntax, "expected string expression, got %s", p.cur.Type)
	}
}

// pushEscapedString pushes the raw string literal and then, immediately,
// the unescape function symbol straight to output (spec §4.4): this is a
// direct-to-output shortcut, not a regular operator-stack push, since it
// applies unconditionally with no precedence to resolve.
func (p *Parser) pushEscapedString(s string) {
	p.yardPushValue(value.NewString(s))
	if p.err != nil {
		return
	}
	p.yardPushValue(value.NewFunction(unescapeFunc))
}

// parenthesized parses "(" <expr of kind> ")" for any of the four term
// routines.
func (p *Parser) parenthesized(kind value.Kind) {
	p.next() // consume '('
	p.yardPushParen()
	p.exprOfKind(kind)
	if p.err != nil {
		return
	}
	if !p.expect(token.RPAREN, "')'") {
		return
	}
	p.yardCloseParen()
}

// call parses a function-call atom: push the function symbol, then "(",
// then each argument per funcTable's contract, then ")" (spec §4.3's
// per-function argument-type table, §4.4's call-parsing rules). ctxKind is
// the result kind the enclosing term routine expects, used for ifelse's
// argContext branches.
func (p *Parser) call(tok token.Type, ctxKind value.Kind) {
	meta := funcTable[tok]
	fnDesc := functions[tok]
	p.yardPushFunctionSymbol(fnDesc)
	if p.err != nil {
		return
	}
	p.next()
	if !p.expect(token.LPAREN, "'('") {
		return
	}
	p.yardPushParen()
	for i, ak := range meta.Args {
		if i > 0 {
			if !p.expect(token.COMMA, "','") {
				return
			}
			p.yardComma()
			if p.err != nil {
				return
			}
		}
		p.callArg(ak, ctxKind)
		if p.err != nil {
			return
		}
	}
	if !p.expect(token.RPAREN, "')'") {
		return
	}
	p.yardCloseParen()
}

func (p *Parser) callArg(ak argKind, ctxKind value.Kind) {
	switch ak {
	case argNumber:
		p.exprOfKind(value.KindNumber)
	case argBool:
		p.exprOfKind(value.KindBool)
	case argDatetime:
		p.exprOfKind(value.KindDatetime)
	case argString:
		p.exprOfKind(value.KindString)
	case argContext:
		p.exprOfKind(ctxKind)
	case argAny:
		_, err := p.dispatchGeneric(dispatchOrder, func() bool { return true })
		if err != nil {
			p.err = err
		}
	case argDatepart:
		p.datepartArg()
	}
}

// datepartArg reads a raw STRING token (never a general string expression)
// and rewrites it to its 0..6 index (spec §4.3).
func (p *Parser) datepartArg() {
	if p.cur.Type != token.STRING {
		p.fail(value.ErrSyntax, "expected datepart literal, got %s", p.cur.Type)
		return
	}
	idx, ok := literal.DatepartIndex(p.cur.Literal)
	if !ok {
		p.fail(value.ErrSyntax, "unknown datepart %q", p.cur.Literal)
		return
	}
	p.yardPushValue(value.NewNumber(float64(idx)))
	p.next()
}
