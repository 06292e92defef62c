package utils

import "testing"

func TestParseSpanishInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1.234.567", 1234567, true},
		{"42", 42, true},
		{" 1.000 ", 1000, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, c := range cases {
		got := ParseSpanishInt(c.in)
		if c.ok {
			if got == nil || *got != c.want {
				t.Errorf("ParseSpanishInt(%q) = %v, want %d", c.in, got, c.want)
			}
		} else if got != nil {
			t.Errorf("ParseSpanishInt(%q) = %d, want nil", c.in, *got)
		}
	}
}

func TestParseSpanishFloat(t *testing.T) {
	got := ParseSpanishFloat("1.234,56")
	if got == nil || *got != 1234.56 {
		t.Fatalf("ParseSpanishFloat = %v, want 1234.56", got)
	}
	if ParseSpanishFloat("") != nil {
		t.Error("empty string should parse to nil")
	}
	if ParseSpanishFloat("bote") != nil {
		t.Error("non-numeric string should parse to nil")
	}
}

func TestDateOnly(t *testing.T) {
	if got := DateOnly("2026-01-24 21:30:00"); got != "2026-01-24" {
		t.Errorf("DateOnly = %q", got)
	}
	if got := DateOnly("2026-01-24"); got != "2026-01-24" {
		t.Errorf("DateOnly = %q", got)
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName("2026-01-24"); got != "Saturday" {
		t.Errorf("WeekdayName = %q, want Saturday", got)
	}
	if got := WeekdayName("not-a-date"); got != "" {
		t.Errorf("WeekdayName = %q, want empty", got)
	}
}

func TestCompactDate(t *testing.T) {
	if got := CompactDate("2026-01-24"); got != "20260124" {
		t.Errorf("CompactDate = %q", got)
	}
}
