package builtin

import (
	"strconv"
	"strings"

	"github.com/exprlang/exprc/internal/literal"
	"github.com/exprlang/exprc/internal/value"
)

// isSpaceByte matches the lexer's whitespace set (lexer.go), reused here so
// trim() strips exactly what the lexer itself treats as insignificant.
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\v', '\f', 0xA0:
		return true
	default:
		return false
	}
}

func callLength(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString); ok {
		return v
	}
	return value.NewNumber(float64(len(args[0].Str())))
}

func callFind(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString, value.KindString); ok {
		return v
	}
	return value.NewNumber(float64(strings.Index(args[0].Str(), args[1].Str())))
}

func callTrim(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString); ok {
		return v
	}
	s := args[0].Str()
	start, end := 0, len(s)
	for start < end && isSpaceByte(s[start]) {
		start++
	}
	for end > start && isSpaceByte(s[end-1]) {
		end--
	}
	return allocOrError(ar, s[start:end])
}

// asciiUpper/asciiLower only fold 'a'-'z'/'A'-'Z': byte-level per spec.md's
// Unicode non-goal, not strings.ToUpper/ToLower's full Unicode case folding.
func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func callUpper(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString); ok {
		return v
	}
	return allocOrError(ar, asciiUpper(args[0].Str()))
}

func callLower(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString); ok {
		return v
	}
	return allocOrError(ar, asciiLower(args[0].Str()))
}

// callSubstr implements substr(string, start, length): start and length
// truncate toward zero; out-of-range bounds clamp rather than error, since
// the spec leaves substr's out-of-bounds behavior unspecified.
func callSubstr(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString, value.KindNumber, value.KindNumber); ok {
		return v
	}
	s := args[0].Str()
	start := int(args[1].Number())
	length := int(args[2].Number())
	if start < 0 {
		start = 0
	}
	if start > len(s) {
		start = len(s)
	}
	if length < 0 {
		length = 0
	}
	end := start + length
	if end > len(s) {
		end = len(s)
	}
	return allocOrError(ar, s[start:end])
}

func callReplace(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString, value.KindString, value.KindString); ok {
		return v
	}
	replaced := strings.ReplaceAll(args[0].Str(), args[1].Str(), args[2].Str())
	return allocOrError(ar, replaced)
}

// callUnescape decodes \\ \" \n \t; any other backslash sequence is kept
// verbatim (spec §9's explicit Open Question resolution, chosen for
// compatibility with the reference source). Synthesized by the parser
// after every escaped string literal (spec §4.4).
func callUnescape(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindString); ok {
		return v
	}
	s := args[0].Str()
	if strings.IndexByte(s, '\\') < 0 {
		return allocOrError(ar, s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		next := s[i+1]
		switch next {
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte('\\')
			b.WriteByte(next)
		}
		i++
	}
	return allocOrError(ar, b.String())
}

// callStr is the generic-dispatch str(x) of spec §4.3/§4: renders any
// value kind to its textual form, always through the arena even when x is
// already a string, since the evaluator's ownership accounting (spec §4.7)
// expects an impure function's result to be arena-owned.
func callStr(args []value.Value, ar *value.Arena) value.Value {
	if v, ok := propagate(args); ok {
		return v
	}
	var s string
	switch args[0].Kind {
	case value.KindBool:
		s = strconv.FormatBool(args[0].Bool())
	case value.KindNumber:
		s = strconv.FormatFloat(args[0].Number(), 'g', -1, 64)
	case value.KindDatetime:
		s = literal.FormatDatetime(args[0].Datetime())
	case value.KindString:
		s = args[0].Str()
	default:
		s = args[0].GoString()
	}
	return allocOrError(ar, s)
}

// allocOrError writes s into ar's arena, reporting out-of-memory as a
// blocking memory error (spec §5: "Exceeding the workspace is reported as
// out-of-memory, never as a crash or silent truncation").
func allocOrError(ar *value.Arena, s string) value.Value {
	v, ok := ar.Alloc(s)
	if !ok {
		return value.NewError(value.ErrMemory)
	}
	return v
}
