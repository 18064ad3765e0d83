package parser

import "github.com/exprlang/exprc/internal/value"

// yard.go implements component C4: the shunting-yard driver that turns the
// term/operator stream the four expr_* routines produce into the postfix
// instruction sequence on ws's output stack (spec §4.4).

// yardPushValue pushes a literal, variable, or already-resolved value
// straight to the output stack.
func (p *Parser) yardPushValue(v value.Value) {
	if !p.ws.PushOutput(v) {
		p.fail(value.ErrMemory, "workspace exhausted")
		return
	}
	p.simplify()
}

// yardPushFunctionSymbol pushes a regular (precedence-0) function onto the
// operator stack. It is always immediately followed by the '(' that opens
// its argument list, so it can never be exposed to yardPushOperator's
// precedence-pop scan before the Null sentinel covers it.
func (p *Parser) yardPushFunctionSymbol(fn *value.Func) {
	if !p.ws.PushOperator(value.NewFunction(fn)) {
		p.fail(value.ErrMemory, "workspace exhausted")
	}
}

// yardPushParen pushes the '(' sentinel, used both for a parenthesized
// sub-expression and for the opening paren of a function call.
func (p *Parser) yardPushParen() {
	if !p.ws.PushOperator(value.Null()) {
		p.fail(value.ErrMemory, "workspace exhausted")
	}
}

// yardPopToOutput moves the operator stack's top entry to the output stack,
// running the simplifier afterward (every push to output is a simplify
// opportunity, spec §4.5).
func (p *Parser) yardPopToOutput() {
	v, _ := p.ws.PopOperator()
	if !p.ws.PushOutput(v) {
		p.fail(value.ErrMemory, "workspace exhausted")
		return
	}
	p.simplify()
}

// yardPushOperator pops any operator stack entries that bind tighter (or,
// for left-associative ties, equally tight) than fn, then pushes fn. The
// pop loop halts at the Null sentinel, which also shields any pending
// regular-function symbol sitting beneath it (spec §4.4).
func (p *Parser) yardPushOperator(fn *value.Func) {
	for {
		top, ok := p.ws.TopOperator()
		if !ok || top.Kind == value.KindNull {
			break
		}
		topFn := top.Func()
		if topFn.Precedence < fn.Precedence || (topFn.Precedence == fn.Precedence && !fn.RightAssoc) {
			p.yardPopToOutput()
			if p.err != nil {
				return
			}
			continue
		}
		break
	}
	if !p.ws.PushOperator(value.NewFunction(fn)) {
		p.fail(value.ErrMemory, "workspace exhausted")
	}
}

// yardComma pops operators to output until (but not including) the Null
// sentinel that marks the enclosing call's argument list (spec §4.4).
func (p *Parser) yardComma() {
	for {
		top, ok := p.ws.TopOperator()
		if !ok || top.Kind == value.KindNull {
			return
		}
		p.yardPopToOutput()
		if p.err != nil {
			return
		}
	}
}

// yardCloseParen pops operators to output until a Null sentinel is
// uncovered, discards it, and — if a regular function symbol was waiting
// beneath it — pops that too, completing the call's instruction sequence
// (spec §4.4's unified ')' rule for both grouping and call parens).
func (p *Parser) yardCloseParen() {
	for {
		top, ok := p.ws.TopOperator()
		if !ok {
			p.fail(value.ErrSyntax, "unmatched ')'")
			return
		}
		if top.Kind == value.KindNull {
			p.ws.PopOperator()
			break
		}
		p.yardPopToOutput()
		if p.err != nil {
			return
		}
	}
	if top, ok := p.ws.TopOperator(); ok && top.Kind == value.KindFunction && top.Func().Precedence == 0 {
		p.yardPopToOutput()
	}
}

// yardFinish flushes every remaining operator to output at end-of-input.
// Uncovering a Null sentinel here means an unmatched '(' was never closed.
func (p *Parser) yardFinish() {
	for p.ws.OpLen() > 0 {
		top, _ := p.ws.TopOperator()
		if top.Kind == value.KindNull {
			p.fail(value.ErrSyntax, "unmatched '('")
			return
		}
		p.yardPopToOutput()
		if p.err != nil {
			return
		}
	}
}
