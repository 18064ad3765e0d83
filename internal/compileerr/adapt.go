package compileerr

import (
	"github.com/exprlang/exprc/internal/eval"
	"github.com/exprlang/exprc/internal/parser"
)

// FromParseError adapts a parser.ParseError (which already carries a
// byte offset) into a renderable CompileError.
func FromParseError(err *parser.ParseError, source string) *CompileError {
	if err == nil {
		return nil
	}
	return New(err.Kind, err.Message, source, err.Offset)
}

// FromEvalError adapts an eval.EvalError. Evaluation failures carry no
// source position — by the time eval.Run runs, the offsets that
// produced each instruction have already been discarded — so the
// rendering falls back to the no-caret form.
func FromEvalError(err *eval.EvalError, source string) *CompileError {
	if err == nil {
		return nil
	}
	return New(err.Kind, err.Message, source, -1)
}
