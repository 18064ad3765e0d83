package parser

import (
	"github.com/exprlang/exprc/internal/builtin"
	"github.com/exprlang/exprc/internal/value"
)

// simplify implements component C5 (spec §4.5): whenever a function or
// operator symbol lands on top of the output stack, fold it immediately if
// every one of its operands is a literal and the function is pure. This
// keeps the compiled stream free of dead arithmetic on constants without a
// separate optimization pass over the finished instruction sequence.
func (p *Parser) simplify() {
	top, ok := p.ws.TopOutput()
	if !ok || top.Kind != value.KindFunction {
		return
	}
	fn := top.Func()

	// The reclassified unary '+' is a pure identity wrapper; spec §4.5 drops
	// it unconditionally, even over a non-literal operand (a variable, say),
	// rather than only when its argument happens to be constant.
	if fn == builtin.UnaryPlus {
		out := p.ws.Output()
		operand := out[len(out)-2]
		p.ws.SetOutput(2, operand)
		p.simplify()
		return
	}

	if !fn.Pure {
		return
	}
	n := int(fn.Arity)
	out := p.ws.Output()
	if len(out) < n+1 {
		return
	}
	args := make([]value.Value, n)
	base := len(out) - 1 - n
	for i := 0; i < n; i++ {
		a := out[base+i]
		if !a.IsLiteral() {
			return
		}
		args[i] = a
	}
	result := fn.Call(args, nil)
	p.ws.SetOutput(n+1, result)
	p.simplify()
}
