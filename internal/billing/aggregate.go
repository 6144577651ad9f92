package billing

import "github.com/mchen-dev/rentops/internal/model"

// RentFigures summarizes how much of a lease's total obligation has come in
// as rent-income transactions.
type RentFigures struct {
	TotalRent    float64 `json:"total_rent"`
	ReceivedRent float64 `json:"received_rent"`
	UnpaidRent   float64 `json:"unpaid_rent"`
	IsFullyPaid  bool    `json:"is_fully_paid"`
	PaymentRate  float64 `json:"payment_rate"` // percent, 0-100+
}

// AggregateRent sums the rent-income transactions recorded against a lease.
// The total obligation prefers the lease's explicit total contract amount and
// falls back to monthly rent times the term length in months. This is the
// legacy reconciliation path for leases without a payment schedule, and also
// feeds the lease detail view.
func AggregateRent(lease model.Lease, transactions []model.Transaction) RentFigures {
	total := lease.TotalContractAmount
	if total <= 0 {
		total = EstimateTotalAmount(lease.LeaseStart, lease.LeaseEnd, lease.MonthlyRent)
	}

	var received float64
	for _, t := range transactions {
		if t.LeaseID == nil || *t.LeaseID != lease.ID {
			continue
		}
		if !t.IsRentIncome() {
			continue
		}
		received += t.Amount
	}

	unpaid := total - received
	if unpaid < 0 {
		unpaid = 0
	}

	figures := RentFigures{
		TotalRent:    total,
		ReceivedRent: received,
		UnpaidRent:   unpaid,
		IsFullyPaid:  total > 0 && unpaid == 0,
	}
	if total > 0 {
		figures.PaymentRate = received / total * 100
	}
	return figures
}
