package literal

import "github.com/exprlang/exprc/internal/value"

// ParseBool parses exactly one of true/True/TRUE/false/False/FALSE.
func ParseBool(s string) (value.Value, bool) {
	switch s {
	case "true", "True", "TRUE":
		return value.NewBool(true), true
	case "false", "False", "FALSE":
		return value.NewBool(false), true
	default:
		return value.Value{}, false
	}
}
