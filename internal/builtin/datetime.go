package builtin

import (
	"time"

	"github.com/exprlang/exprc/internal/literal"
	"github.com/exprlang/exprc/internal/value"
)

// Datepart indices, matching literal.DatepartIndex's numbering (spec §4.3:
// "a datepart literal ... rewritten at parse time into a number 0..6").
const (
	partYear = iota
	partMonth
	partDay
	partHour
	partMinute
	partSecond
	partMillis
)

func decompose(ms uint64) time.Time {
	return time.UnixMilli(int64(ms)).UTC()
}

// toDatetimeValue reports an out-of-range result as a value error rather
// than silently wrapping, since datetimes outside [1970, 2999] have no
// representation in this language's Value kind (spec §3).
func toDatetimeValue(t time.Time) value.Value {
	if t.Year() < literal.MinYear || t.Year() > literal.MaxYear {
		return value.NewError(value.ErrValue)
	}
	ms := t.UnixMilli()
	if ms < 0 {
		return value.NewError(value.ErrValue)
	}
	return value.NewDatetime(uint64(ms))
}

func callDatepart(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindDatetime, value.KindNumber); ok {
		return v
	}
	t := decompose(args[0].Datetime())
	switch int(args[1].Number()) {
	case partYear:
		return value.NewNumber(float64(t.Year()))
	case partMonth:
		return value.NewNumber(float64(t.Month()))
	case partDay:
		return value.NewNumber(float64(t.Day()))
	case partHour:
		return value.NewNumber(float64(t.Hour()))
	case partMinute:
		return value.NewNumber(float64(t.Minute()))
	case partSecond:
		return value.NewNumber(float64(t.Second()))
	case partMillis:
		return value.NewNumber(float64(t.Nanosecond() / int(time.Millisecond)))
	default:
		return value.NewError(value.ErrValue)
	}
}

// addMonthsClamped implements the month/year arm of dateadd: adding months
// clamps the day-of-month to the destination month's length rather than
// overflowing into the following month (spec §8 scenario 5: adding one
// month to Jan 31 lands on Feb 29 in a leap year, not Mar 2/3).
func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := y*12 + int(m) - 1 + months
	newYear := total / 12
	newMonthIdx := total % 12
	if newMonthIdx < 0 {
		newMonthIdx += 12
		newYear--
	}
	newMonth := newMonthIdx + 1
	if maxDay := literal.DaysInMonth(newYear, newMonth); d > maxDay {
		d = maxDay
	}
	return time.Date(newYear, time.Month(newMonth), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func callDateadd(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindDatetime, value.KindNumber, value.KindNumber); ok {
		return v
	}
	t := decompose(args[0].Datetime())
	n := int(args[1].Number())
	switch int(args[2].Number()) {
	case partYear:
		t = addMonthsClamped(t, n*12)
	case partMonth:
		t = addMonthsClamped(t, n)
	case partDay:
		t = t.AddDate(0, 0, n)
	case partHour:
		t = t.Add(time.Duration(n) * time.Hour)
	case partMinute:
		t = t.Add(time.Duration(n) * time.Minute)
	case partSecond:
		t = t.Add(time.Duration(n) * time.Second)
	case partMillis:
		t = t.Add(time.Duration(n) * time.Millisecond)
	default:
		return value.NewError(value.ErrValue)
	}
	return toDatetimeValue(t)
}

func callDatetrunc(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindDatetime, value.KindNumber); ok {
		return v
	}
	t := decompose(args[0].Datetime())
	y, mo, d := t.Date()
	h, mi, s := t.Hour(), t.Minute(), t.Second()
	ns := t.Nanosecond()
	switch int(args[1].Number()) {
	case partYear:
		mo, d, h, mi, s, ns = 1, 1, 0, 0, 0, 0
	case partMonth:
		d, h, mi, s, ns = 1, 0, 0, 0, 0
	case partDay:
		h, mi, s, ns = 0, 0, 0, 0
	case partHour:
		mi, s, ns = 0, 0, 0
	case partMinute:
		s, ns = 0, 0
	case partSecond:
		ns = 0
	case partMillis:
		ns -= ns % int(time.Millisecond)
	default:
		return value.NewError(value.ErrValue)
	}
	return toDatetimeValue(time.Date(y, mo, d, h, mi, s, ns, time.UTC))
}

func callDateset(args []value.Value, _ *value.Arena) value.Value {
	if v, ok := checkKinds(args, value.KindDatetime, value.KindNumber, value.KindNumber); ok {
		return v
	}
	t := decompose(args[0].Datetime())
	y, mo, d := t.Date()
	h, mi, s := t.Hour(), t.Minute(), t.Second()
	ns := t.Nanosecond()
	n := int(args[1].Number())
	switch int(args[2].Number()) {
	case partYear:
		y = n
	case partMonth:
		mo = time.Month(n)
	case partDay:
		d = n
	case partHour:
		h = n
	case partMinute:
		mi = n
	case partSecond:
		s = n
	case partMillis:
		ns = n * int(time.Millisecond)
	default:
		return value.NewError(value.ErrValue)
	}
	if maxDay := literal.DaysInMonth(y, int(mo)); d > maxDay {
		d = maxDay
	}
	return toDatetimeValue(time.Date(y, mo, d, h, mi, s, ns, time.UTC))
}

// callNow is the sole nullary impure function: wall-clock time cannot be
// folded (spec §4.5 excludes it from constant folding explicitly).
func callNow(_ []value.Value, _ *value.Arena) value.Value {
	return value.NewDatetime(uint64(time.Now().UnixMilli()))
}
