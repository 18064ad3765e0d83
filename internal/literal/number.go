// Package literal implements the standalone micro-parsers of spec §4.8:
// strict single-literal scanners for numbers, booleans, datetimes, and
// strings, each requiring the entire input range to match.
package literal

import (
	"math"
	"strconv"

	"github.com/exprlang/exprc/internal/value"
)

const maxSafeInteger = 1 << 53

// ParseNumber parses a single number literal: the lexer grammar of spec
// §4.1 plus an optional leading sign. Integer-only lexemes longer than
// 16 digits, or whose value exceeds +-2^53, and any value that overflows
// float64, report ok=false (the caller turns that into a value-error).
func ParseNumber(s string) (value.Value, bool) {
	if s == "" {
		return value.Value{}, false
	}
	i := 0
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	digitsStart := i
	if i >= len(s) || !isDigit(s[i]) {
		return value.Value{}, false
	}
	if s[i] == '0' {
		i++
	} else {
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}
	intDigits := i - digitsStart
	isFloat := false

	if i < len(s) && s[i] == '.' {
		j := i + 1
		if j >= len(s) || !isDigit(s[j]) {
			return value.Value{}, false
		}
		isFloat = true
		i = j
		for i < len(s) && isDigit(s[i]) {
			i++
		}
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		isFloat = true
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		if i >= len(s) || !isDigit(s[i]) {
			return value.Value{}, false
		}
		if s[i] == '0' {
			i++
		} else {
			for i < len(s) && isDigit(s[i]) {
				i++
			}
		}
		_ = expStart
	}

	if i != len(s) {
		return value.Value{}, false // trailing garbage: not a full-range match
	}

	if !isFloat {
		if intDigits > 16 {
			return value.Value{}, false
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value.Value{}, false
		}
		if n > maxSafeInteger || n < -maxSafeInteger {
			return value.Value{}, false
		}
		return value.NewNumber(float64(n)), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value.Value{}, false
	}
	if math.IsInf(f, 0) {
		return value.Value{}, false
	}
	return value.NewNumber(f), true
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
