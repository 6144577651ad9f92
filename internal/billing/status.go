package billing

import (
	"time"

	"github.com/mchen-dev/rentops/internal/model"
)

// DefaultExpiringWindowDays is how close to the end date a lease is reported
// as expiring-soon.
const DefaultExpiringWindowDays = 30

// ClassifyLeaseStatus maps a lease term and the current date to a status.
// The start boundary is inclusive: a lease starting today is already active.
// The end boundary is likewise inclusive: a lease is expired only strictly
// after its end date.
func ClassifyLeaseStatus(start, end, now time.Time) model.LeaseStatus {
	return ClassifyLeaseStatusWindow(start, end, now, DefaultExpiringWindowDays)
}

// ClassifyLeaseStatusWindow is ClassifyLeaseStatus with an explicit
// expiring-soon window in days.
func ClassifyLeaseStatusWindow(start, end, now time.Time, windowDays int) model.LeaseStatus {
	start, end, now = DateOnly(start), DateOnly(end), DateOnly(now)
	switch {
	case now.Before(start):
		return model.LeaseStatusNotEffective
	case now.After(end):
		return model.LeaseStatusExpired
	case daysUntil(now, end) <= windowDays:
		return model.LeaseStatusExpiring
	default:
		return model.LeaseStatusActive
	}
}

// EffectiveScheduleStatus derives the status a schedule entry should display.
// The stored column only ever holds unpaid or paid; overdue is computed here
// from the due date on every read rather than persisted, so an entry stops
// being overdue the moment it is paid and no batch job is needed.
func EffectiveScheduleStatus(entry model.PaymentSchedule, now time.Time) model.PaymentStatus {
	if entry.Status == model.PaymentStatusPaid {
		return model.PaymentStatusPaid
	}
	if DateOnly(now).After(DateOnly(entry.DueDate)) {
		return model.PaymentStatusOverdue
	}
	return model.PaymentStatusUnpaid
}
