package literal

// DatepartNames is the closed set of datepart literal strings accepted
// by datepart/dateadd/datetrunc/dateset (spec §4.3), in the numeric
// order the parser rewrites them to (0..6).
var DatepartNames = [...]string{"year", "month", "day", "hour", "minute", "second", "millis"}

// DatepartIndex returns the 0..6 index of a datepart literal, or false
// if name is not one of the closed set.
func DatepartIndex(name string) (int, bool) {
	for i, n := range DatepartNames {
		if n == name {
			return i, true
		}
	}
	return 0, false
}
