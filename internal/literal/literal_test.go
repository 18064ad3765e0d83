package literal

import "testing"

func TestParseNumberAccepts(t *testing.T) {
	tests := map[string]float64{
		"0": 0, "42": 42, "3.14": 3.14, "1e10": 1e10, "-5": -5, "+5": 5,
		"1.5e-3": 1.5e-3,
	}
	for in, want := range tests {
		v, ok := ParseNumber(in)
		if !ok {
			t.Errorf("ParseNumber(%q) failed", in)
			continue
		}
		if v.Number() != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", in, v.Number(), want)
		}
	}
}

func TestParseNumberRejects(t *testing.T) {
	for _, in := range []string{"", "01", "1.", ".5", "1e", "1 ", "abc", "12345678901234567"} {
		if _, ok := ParseNumber(in); ok {
			t.Errorf("ParseNumber(%q) unexpectedly succeeded", in)
		}
	}
}

func TestParseNumberIntegerOverflow(t *testing.T) {
	if _, ok := ParseNumber("9007199254740993"); ok { // 2^53 + 1
		t.Error("expected overflow of 2^53 to be rejected")
	}
	if _, ok := ParseNumber("9007199254740992"); !ok { // 2^53 exactly
		t.Error("expected exactly 2^53 to be accepted")
	}
}

func TestParseBool(t *testing.T) {
	for _, in := range []string{"true", "True", "TRUE"} {
		v, ok := ParseBool(in)
		if !ok || v.Bool() != true {
			t.Errorf("ParseBool(%q) = %v, %v", in, v, ok)
		}
	}
	for _, in := range []string{"false", "False", "FALSE"} {
		v, ok := ParseBool(in)
		if !ok || v.Bool() != false {
			t.Errorf("ParseBool(%q) = %v, %v", in, v, ok)
		}
	}
	if _, ok := ParseBool("yes"); ok {
		t.Error("ParseBool(\"yes\") unexpectedly succeeded")
	}
}

func TestParseDatetimeRoundTrip(t *testing.T) {
	tests := []string{
		"1970-01-01T00:00:00.000Z",
		"2024-01-31T00:00:00.000Z",
		"2024-02-29T12:30:45.123Z",
		"2999-12-31T23:59:59.999Z",
	}
	for _, in := range tests {
		v, ok := ParseDatetime(in)
		if !ok {
			t.Fatalf("ParseDatetime(%q) failed", in)
		}
		got := FormatDatetime(v.Datetime())
		if got != in {
			t.Errorf("round trip: ParseDatetime(%q) -> %q, want %q", in, got, in)
		}
	}
}

func TestParseDatetimeDateOnly(t *testing.T) {
	v, ok := ParseDatetime("2024-01-31")
	if !ok {
		t.Fatal("expected date-only literal to parse")
	}
	if FormatDatetime(v.Datetime()) != "2024-01-31T00:00:00.000Z" {
		t.Errorf("got %s", FormatDatetime(v.Datetime()))
	}
}

func TestParseDatetimeRejectsBadDates(t *testing.T) {
	for _, in := range []string{
		"2024-02-30",      // Feb has 28/29 days
		"2023-02-29",      // not a leap year
		"2024-13-01",      // bad month
		"1969-12-31",      // before epoch
		"3000-01-01",      // after max year
		"2024-01-31T24:00:00Z", // bad hour
	} {
		if _, ok := ParseDatetime(in); ok {
			t.Errorf("ParseDatetime(%q) unexpectedly succeeded", in)
		}
	}
}

func TestDatepartIndex(t *testing.T) {
	tests := map[string]int{"year": 0, "month": 1, "day": 2, "hour": 3, "minute": 4, "second": 5, "millis": 6}
	for name, want := range tests {
		got, ok := DatepartIndex(name)
		if !ok || got != want {
			t.Errorf("DatepartIndex(%q) = %d, %v, want %d", name, got, ok, want)
		}
	}
	if _, ok := DatepartIndex("week"); ok {
		t.Error("DatepartIndex(\"week\") unexpectedly succeeded")
	}
}

func TestParseAnyOrder(t *testing.T) {
	if v, ok := ParseAny("42"); !ok || v.Kind.String() != "number" {
		t.Errorf("ParseAny(42) = %v, %v", v, ok)
	}
	if v, ok := ParseAny("true"); !ok || v.Kind.String() != "bool" {
		t.Errorf("ParseAny(true) = %v, %v", v, ok)
	}
	if v, ok := ParseAny("2024-01-31"); !ok || v.Kind.String() != "datetime" {
		t.Errorf("ParseAny(date) = %v, %v", v, ok)
	}
	if v, ok := ParseAny("hello"); !ok || v.Kind.String() != "string" {
		t.Errorf("ParseAny(hello) = %v, %v", v, ok)
	}
}
