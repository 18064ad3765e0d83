package literal

import "github.com/exprlang/exprc/internal/value"

const maxStringLen = 1<<32 - 1

// ParseString accepts any byte range with no NUL bytes and length within
// the spec's uint32 bound, returned as-is (no surrounding quotes expected).
func ParseString(s string) (value.Value, bool) {
	if len(s) > maxStringLen {
		return value.Value{}, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return value.Value{}, false
		}
	}
	return value.NewString(s), true
}

// ParseAny tries number, bool, datetime, string in that order and
// returns the first success (spec §4.8's generic micro-parser).
func ParseAny(s string) (value.Value, bool) {
	if v, ok := ParseNumber(s); ok {
		return v, true
	}
	if v, ok := ParseBool(s); ok {
		return v, true
	}
	if v, ok := ParseDatetime(s); ok {
		return v, true
	}
	return ParseString(s)
}
