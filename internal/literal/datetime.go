package literal

import (
	"time"

	"github.com/exprlang/exprc/internal/value"
)

const minYear = 1970
const maxYear = 2999

// MinYear and MaxYear are the inclusive datetime range of spec §3,
// exported for callers (datetime arithmetic) that need to clamp.
const MinYear = minYear
const MaxYear = maxYear

// DaysInMonth reports the number of days in the given Gregorian month,
// accounting for leap years. Exported for datetime arithmetic that needs
// to clamp a day-of-month after adding months/years.
func DaysInMonth(year, month int) int { return daysInMonth(year, month) }

// ParseDatetime parses YYYY-MM-DD optionally followed by Thh:mm:ss,
// optionally followed by .mmm, optionally followed by Z (spec §4.8).
// The entire input must match; any missing/malformed component fails.
func ParseDatetime(s string) (value.Value, bool) {
	year, month, day, rest, ok := parseDate(s)
	if !ok {
		return value.Value{}, false
	}
	hour, min, sec, millis := 0, 0, 0, 0
	if rest != "" {
		if rest[0] != 'T' {
			return value.Value{}, false
		}
		rest = rest[1:]
		hour, min, sec, rest, ok = parseTimeOfDay(rest)
		if !ok {
			return value.Value{}, false
		}
		if rest != "" && rest[0] == '.' {
			rest = rest[1:]
			n := 0
			digits := 0
			for digits < 3 && digits < len(rest) && isDigit(rest[digits]) {
				n = n*10 + int(rest[digits]-'0')
				digits++
			}
			if digits == 0 {
				return value.Value{}, false
			}
			for digits < 3 {
				n *= 10
				digits++
			}
			millis = n
			rest = rest[digits:]
		}
		if rest != "" && rest[0] == 'Z' {
			rest = rest[1:]
		}
	}
	if rest != "" {
		return value.Value{}, false
	}
	if !validDate(year, month, day) {
		return value.Value{}, false
	}
	t := time.Date(year, time.Month(month), day, hour, min, sec, millis*int(time.Millisecond), time.UTC)
	ms := t.UnixMilli()
	if ms < 0 {
		return value.Value{}, false
	}
	return value.NewDatetime(uint64(ms)), true
}

func parseDate(s string) (year, month, day int, rest string, ok bool) {
	if len(s) < 10 {
		return 0, 0, 0, "", false
	}
	for _, i := range []int{0, 1, 2, 3, 5, 6, 8, 9} {
		if !isDigit(s[i]) {
			return 0, 0, 0, "", false
		}
	}
	if s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, "", false
	}
	year = atoi(s[0:4])
	month = atoi(s[5:7])
	day = atoi(s[8:10])
	if year < minYear || year > maxYear {
		return 0, 0, 0, "", false
	}
	return year, month, day, s[10:], true
}

func parseTimeOfDay(s string) (hour, min, sec int, rest string, ok bool) {
	if len(s) < 8 {
		return 0, 0, 0, "", false
	}
	for _, i := range []int{0, 1, 3, 4, 6, 7} {
		if !isDigit(s[i]) {
			return 0, 0, 0, "", false
		}
	}
	if s[2] != ':' || s[5] != ':' {
		return 0, 0, 0, "", false
	}
	hour = atoi(s[0:2])
	min = atoi(s[3:5])
	sec = atoi(s[6:8])
	if hour > 23 || min > 59 || sec > 59 {
		return 0, 0, 0, "", false
	}
	return hour, min, sec, s[8:], true
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func isLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

func daysInMonth(y, m int) int {
	switch m {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(y) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func validDate(y, m, d int) bool {
	if m < 1 || m > 12 {
		return false
	}
	if d < 1 || d > daysInMonth(y, m) {
		return false
	}
	return true
}

// FormatDatetime renders epoch milliseconds as ISO-8601, the inverse of
// ParseDatetime (spec §8 round-trip property).
func FormatDatetime(ms uint64) string {
	return time.UnixMilli(int64(ms)).UTC().Format("2006-01-02T15:04:05.000Z")
}

