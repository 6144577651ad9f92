package billing

import (
	"errors"
	"fmt"
	"time"

	"github.com/mchen-dev/rentops/internal/model"
)

var (
	ErrInvalidTerm    = errors.New("lease end must be after lease start")
	ErrInvalidRent    = errors.New("monthly rent must be positive")
	ErrInvalidCadence = errors.New("cadence must be at least one month")
)

// Period is one generated billing period, not yet persisted.
type Period struct {
	Number  int
	Start   time.Time
	End     time.Time
	DueDate time.Time
	Amount  float64
}

// CadenceForMethod maps a payment method to its billing period length in
// months.
func CadenceForMethod(method model.PaymentMethod) (int, bool) {
	switch method {
	case model.PaymentMethodMonthly:
		return 1, true
	case model.PaymentMethodQuarterly:
		return 3, true
	case model.PaymentMethodSemiAnnual:
		return 6, true
	case model.PaymentMethodAnnual:
		return 12, true
	default:
		return 0, false
	}
}

// GenerateSchedule carves the lease term [start, end] into consecutive
// periods of cadenceMonths each; the final period is clipped to end exactly
// at the lease end and may be shorter than a full cadence. Each period's
// amount is monthlyRent times the calendar months it spans (minimum 1), and
// its due date is the period start since rent is paid in advance. Period
// numbers start at 1.
func GenerateSchedule(start, end time.Time, monthlyRent float64, cadenceMonths int) ([]Period, error) {
	start, end = DateOnly(start), DateOnly(end)
	if !end.After(start) {
		return nil, fmt.Errorf("%w: start=%s end=%s", ErrInvalidTerm,
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	if monthlyRent <= 0 {
		return nil, fmt.Errorf("%w: got %.2f", ErrInvalidRent, monthlyRent)
	}
	if cadenceMonths < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCadence, cadenceMonths)
	}

	var periods []Period
	cursor := start
	for number := 1; cursor.Before(end); number++ {
		periodEnd := AddMonths(cursor, cadenceMonths)
		if periodEnd.After(end) {
			periodEnd = end
		}
		months := MonthsBetween(cursor, periodEnd)
		periods = append(periods, Period{
			Number:  number,
			Start:   cursor,
			End:     periodEnd,
			DueDate: cursor,
			Amount:  monthlyRent * float64(months),
		})
		cursor = periodEnd
	}
	return periods, nil
}

// EstimateTotalAmount is the default total contract amount when the user does
// not override it.
func EstimateTotalAmount(start, end time.Time, monthlyRent float64) float64 {
	return monthlyRent * float64(MonthsBetween(DateOnly(start), DateOnly(end)))
}

// RenewalTerm shifts a lease term forward by the given number of months,
// yielding the start and end dates of the renewal lease.
func RenewalTerm(start, end time.Time, months int) (time.Time, time.Time) {
	return AddMonths(DateOnly(start), months), AddMonths(DateOnly(end), months)
}
