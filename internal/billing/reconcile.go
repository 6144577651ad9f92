package billing

import "github.com/mchen-dev/rentops/internal/model"

// ApplyPayment records an amount against a schedule entry and returns the
// updated copy. The paid amount accumulates (reversal passes a negative
// amount) and is clamped at zero; the entry is paid once the accumulated
// amount covers the amount due. Overdue is never set here, it is derived on
// read by EffectiveScheduleStatus.
func ApplyPayment(entry model.PaymentSchedule, amount float64) model.PaymentSchedule {
	entry.PaidAmount += amount
	if entry.PaidAmount < 0 {
		entry.PaidAmount = 0
	}
	if entry.PaidAmount >= entry.Amount {
		entry.Status = model.PaymentStatusPaid
	} else {
		entry.Status = model.PaymentStatusUnpaid
	}
	return entry
}

// ReversePayment undoes a previously applied amount. Editing a transaction
// that references a schedule entry must reverse the old amount against the
// old entry before applying the new amount to the new entry; setting the paid
// amount outright would corrupt totals when several transactions target the
// same period.
func ReversePayment(entry model.PaymentSchedule, amount float64) model.PaymentSchedule {
	return ApplyPayment(entry, -amount)
}

// ScheduleAdjustment is one signed delta against a schedule entry's paid
// amount, produced by planning a transaction create/edit/delete and applied
// atomically by the repository alongside the transaction write.
type ScheduleAdjustment struct {
	ScheduleID string
	Delta      float64
}

// PlanAdjustments computes the ordered schedule deltas needed to move a
// rent-income transaction from its previous state to its next state. Either
// state may be absent (nil schedule reference, or no transaction at all for
// pure create/delete). The old reference is reversed first, then the new
// amount is applied. The two deltas stay separate even when both states
// target the same entry: the reversal must clamp at zero on its own before
// the reapply, and collapsing them into one signed delta loses that
// intermediate clamp once the stored paid amount has been edited below the
// prior transaction amount.
func PlanAdjustments(prev, next *model.Transaction) []ScheduleAdjustment {
	var adjustments []ScheduleAdjustment
	if prev != nil && prev.IsRentIncome() && prev.PaymentScheduleID != nil {
		adjustments = append(adjustments, ScheduleAdjustment{
			ScheduleID: prev.PaymentScheduleID.String(),
			Delta:      -prev.Amount,
		})
	}
	if next != nil && next.IsRentIncome() && next.PaymentScheduleID != nil {
		adjustments = append(adjustments, ScheduleAdjustment{
			ScheduleID: next.PaymentScheduleID.String(),
			Delta:      next.Amount,
		})
	}
	return adjustments
}
