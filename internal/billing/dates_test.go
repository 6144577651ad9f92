package billing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		n    int
		want time.Time
	}{
		{"same year", date(2024, 1, 15), 3, date(2024, 4, 15)},
		{"year rollover", date(2024, 11, 1), 3, date(2025, 2, 1)},
		{"multi year", date(2024, 1, 1), 24, date(2026, 1, 1)},
		{"zero", date(2024, 6, 30), 0, date(2024, 6, 30)},
		{"backward", date(2024, 3, 1), -2, date(2024, 1, 1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AddMonths(tc.in, tc.n)
			if !got.Equal(tc.want) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tc.in, tc.n, got, tc.want)
			}
		})
	}
}

func TestAddMonthsKeepsCalendarDay(t *testing.T) {
	// A zoned timestamp must not drift across midnight.
	in := time.Date(2024, 5, 1, 23, 30, 0, 0, time.FixedZone("CST", 8*3600))
	got := AddMonths(in, 1)
	if got.Day() != 1 || got.Month() != time.June {
		t.Errorf("AddMonths drifted to %v", got)
	}
}

func TestMonthsBetween(t *testing.T) {
	cases := []struct {
		name       string
		start, end time.Time
		want       int
	}{
		{"six months", date(2024, 1, 1), date(2024, 7, 1), 6},
		{"one year", date(2024, 3, 1), date(2025, 3, 1), 12},
		{"ignores days", date(2024, 1, 31), date(2024, 3, 1), 2},
		{"floor at one for same month", date(2024, 1, 5), date(2024, 1, 20), 1},
		{"floor at one for inverted", date(2024, 5, 1), date(2024, 2, 1), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MonthsBetween(tc.start, tc.end); got != tc.want {
				t.Errorf("MonthsBetween(%v, %v) = %d, want %d", tc.start, tc.end, got, tc.want)
			}
		})
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 8, 15, 18, 45, 12, 0, time.FixedZone("CST", 8*3600))
	got := DateOnly(in)
	want := date(2024, 8, 15)
	if !got.Equal(want) {
		t.Errorf("DateOnly(%v) = %v, want %v", in, got, want)
	}
	if !DateOnly(time.Time{}).IsZero() {
		t.Error("DateOnly(zero) should stay zero")
	}
}
