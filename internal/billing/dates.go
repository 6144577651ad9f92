// Package billing holds the lease-lifecycle and payment-reconciliation rules:
// calendar-month arithmetic, lease status classification, payment schedule
// generation, payment reconciliation and rent aggregation. Everything here is
// pure computation over values the caller already fetched; "now" is always an
// explicit parameter and no function performs I/O.
package billing

import "time"

// DateOnly strips the time-of-day and zone from t, keeping the calendar date
// in UTC. All billing arithmetic runs on values normalized this way so that
// local/UTC conversions cannot shift a date across midnight.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths shifts a calendar date forward by n months, operating on the
// year/month/day components directly. Month overflow rolls into the year;
// day overflow normalizes forward (Jan 31 + 1 month = Mar 2/3).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, time.Month(int(m)+n), d, 0, 0, 0, 0, time.UTC)
}

// MonthsBetween returns the calendar-month difference between two dates,
// computed from year/month components only and ignoring day-of-month. The
// result is floored at 1 so that a lease shorter than one calendar month
// never yields a zero-amount contract.
func MonthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 1 {
		return 1
	}
	return months
}

// daysUntil counts whole days from a to b, negative when b precedes a.
func daysUntil(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
