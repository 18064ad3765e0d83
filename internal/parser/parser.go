// Package parser implements the parser of spec §4.3/§4.4: four mutually
// recursive descent routines (one per expression type) driving a shared
// shunting-yard operator stack, plus the generic dispatcher that lets
// context determine an expression's result type.
package parser

import (
	"fmt"

	"github.com/exprlang/exprc/internal/lexer"
	"github.com/exprlang/exprc/internal/token"
	"github.com/exprlang/exprc/internal/value"
)

// ParseError is a compile-time failure: always "blocking" in spec §7's
// sense (it aborts compilation), carrying the byte offset of the earliest
// offending symbol. Kind is almost always ErrSyntax; ErrMemory surfaces if
// the workspace is exhausted mid-compile.
type ParseError struct {
	Kind    value.ErrorKind
	Message string
	Offset  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

// Parser holds the mutable state threaded through the four expr_* routines:
// the lexer's two-token lookahead and the caller-supplied workspace that
// doubles as the shunting-yard's output/operator stacks.
type Parser struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
	ws   *value.Workspace
	err  *ParseError
}

func newParser(input string, ws *value.Workspace) *Parser {
	p := &Parser{lex: lexer.New(input), ws: ws}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

// fail records the first error encountered; later failures (from unwound
// recursive calls) do not overwrite it.
func (p *Parser) fail(kind value.ErrorKind, format string, a ...any) {
	if p.err != nil {
		return
	}
	p.err = &ParseError{Kind: kind, Message: fmt.Sprintf(format, a...), Offset: p.cur.Pos.Offset}
}

func (p *Parser) expect(tt token.Type, what string) bool {
	if p.cur.Type != tt {
		p.fail(value.ErrSyntax, "expected %s, got %s", what, p.cur.Type)
		return false
	}
	p.next()
	return true
}

// mark/restore implement the checkpoint/rollback of spec §4.3's generic
// dispatcher and §9's "explicit state snapshot, not exceptions" mandate.
type mark struct {
	lex            lexer.State
	cur, peek      token.Token
	outLen, opLen  int
}

func (p *Parser) markState() mark {
	out, op := p.ws.Mark()
	return mark{lex: p.lex.Mark(), cur: p.cur, peek: p.peek, outLen: out, opLen: op}
}

func (p *Parser) restoreState(m mark) {
	p.lex.Reset(m.lex)
	p.cur, p.peek = m.cur, m.peek
	p.ws.Restore(m.outLen, m.opLen)
}

// CompileNumber/CompileBool/CompileDatetime/CompileString compile input as
// an expression of the named type into ws, per spec §6's library surface.
func CompileNumber(input string, ws *value.Workspace) *ParseError {
	return compileFixed(input, ws, value.KindNumber)
}

func CompileBool(input string, ws *value.Workspace) *ParseError {
	return compileFixed(input, ws, value.KindBool)
}

func CompileDatetime(input string, ws *value.Workspace) *ParseError {
	return compileFixed(input, ws, value.KindDatetime)
}

func CompileString(input string, ws *value.Workspace) *ParseError {
	return compileFixed(input, ws, value.KindString)
}

func compileFixed(input string, ws *value.Workspace, kind value.Kind) *ParseError {
	p := newParser(input, ws)
	p.exprOfKind(kind)
	if p.err != nil {
		return p.err
	}
	return p.finish()
}

// dispatchOrder is the fixed type-trial order of spec §4.3's generic
// dispatcher: "tries types in the order bool, number, datetime, string".
var dispatchOrder = []value.Kind{value.KindBool, value.KindNumber, value.KindDatetime, value.KindString}

// CompileAny compiles input as whichever of the four types parses to
// completion first, per spec §4.3/§6. It reports which type was chosen.
func CompileAny(input string, ws *value.Workspace) (value.Kind, *ParseError) {
	p := newParser(input, ws)
	kind, err := p.dispatchGeneric(dispatchOrder, func() bool { return p.cur.Type == token.EOF })
	if err != nil {
		return 0, err
	}
	if fin := p.finish(); fin != nil {
		return 0, fin
	}
	return kind, nil
}

// finish checks for trailing input (spec §8 scenario 6) and runs the
// shunting-yard's final flush (spec §4.4 "END").
func (p *Parser) finish() *ParseError {
	if p.cur.Type != token.EOF {
		p.fail(value.ErrSyntax, "unexpected trailing token %s", p.cur.Type)
		return p.err
	}
	p.yardFinish()
	return p.err
}

// dispatchGeneric tries each kind in order, accepting the first whose
// parse both succeeds and satisfies accept (spec §4.3: "accepting the
// first that parses to completion"; "completion" is caller-defined —
// end-of-input for a whole compile, a following relational operator for
// an embedded comparison, or unconditional true for a generic function
// argument). It propagates the worst error seen if none succeed, and
// short-circuits immediately on a blocking (memory) error.
func (p *Parser) dispatchGeneric(kinds []value.Kind, accept func() bool) (value.Kind, *ParseError) {
	var worst *ParseError
	for _, k := range kinds {
		m := p.markState()
		p.err = nil
		p.exprOfKind(k)
		if p.err == nil && accept() {
			return k, nil
		}
		if p.err != nil && p.err.Kind == value.ErrMemory {
			return 0, p.err
		}
		if p.err != nil && (worst == nil || severity(p.err.Kind) > severity(worst.Kind)) {
			worst = p.err
		}
		p.restoreState(m)
	}
	p.err = nil
	if worst == nil {
		worst = &ParseError{Kind: value.ErrSyntax, Message: "no expression type matched", Offset: p.cur.Pos.Offset}
	}
	return 0, worst
}

func severity(k value.ErrorKind) int {
	if k == value.ErrMemory {
		return 2
	}
	return 1
}
