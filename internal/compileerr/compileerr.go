// Package compileerr renders a blocking compile-time failure (spec §7's
// ParseError/EvalError) with source-line context and a caret, in the
// style of the teacher's internal/errors package. Unlike the teacher's
// line/column-keyed CompilerError, failures here are keyed by a single
// byte offset into the source — this language's expressions are
// single-line-friendly, so the line/column shown is derived from the
// offset rather than tracked independently through the parse.
package compileerr

import (
	"fmt"
	"strings"

	"github.com/exprlang/exprc/internal/value"
)

// CompileError is a rendering-ready view of a blocking failure: a
// parser.ParseError or an eval.EvalError, both of which reduce to
// (Kind, Message, source-offset).
type CompileError struct {
	Kind    value.ErrorKind
	Message string
	Source  string
	Offset  int
}

// New builds a CompileError from a byte offset into source. offset may
// be -1 (eval-time failures carry no source position) in which case no
// caret line is rendered.
func New(kind value.ErrorKind, message, source string, offset int) *CompileError {
	return &CompileError{Kind: kind, Message: message, Source: source, Offset: offset}
}

func (e *CompileError) Error() string { return e.Format(false) }

// lineCol derives 1-based line/column from a byte offset, scanning
// source once. Mirrors the teacher's Position{Line,Column} without
// requiring the lexer to have tracked them independently.
func lineCol(source string, offset int) (line, col int) {
	if offset < 0 || offset > len(source) {
		offset = len(source)
	}
	line = 1
	lineStart := 0
	for i := 0; i < offset; i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	col = offset - lineStart + 1
	return line, col
}

func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return lines[line-1]
}

// Format renders the error with a single line of source context and a
// caret under the failing offset. If color is true, ANSI codes
// highlight the caret and message, matching the teacher's Format.
func (e *CompileError) Format(color bool) string {
	var sb strings.Builder

	if e.Offset < 0 {
		sb.WriteString(fmt.Sprintf("Error (%s)\n", e.Kind))
		writeMessage(&sb, e.Message, color)
		return sb.String()
	}

	line, col := lineCol(e.Source, e.Offset)
	sb.WriteString(fmt.Sprintf("Error at offset %d (%d:%d), kind %s\n", e.Offset, line, col, e.Kind))

	if src := sourceLine(e.Source, line); src != "" {
		lineNumStr := fmt.Sprintf("%4d | ", line)
		sb.WriteString(lineNumStr)
		sb.WriteString(src)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	writeMessage(&sb, e.Message, color)
	return sb.String()
}

func writeMessage(sb *strings.Builder, message string, color bool) {
	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(message)
	if color {
		sb.WriteString("\033[0m")
	}
}

// FormatErrors formats one or more compile errors, numbering them when
// there is more than one. The compiler never produces more than one
// blocking failure per compile, and no CLI subcommand calls this: each
// renders its single error with Format.
func FormatErrors(errs []*CompileError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compilation failed with %d error(s):\n\n", len(errs)))
	for i, e := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
