package billing

import (
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/mchen-dev/rentops/internal/model"
)

func TestAggregateRent_Example(t *testing.T) {
	// Lease with no schedule, total 18000, two rent payments of 9000 and 4000.
	leaseID := uuid.New()
	lease := model.Lease{ID: leaseID, TotalContractAmount: 18000}

	otherLease := uuid.New()
	txns := []model.Transaction{
		{TransactionType: model.TransactionIncome, Category: model.CategoryRent, Amount: 9000, LeaseID: &leaseID},
		{TransactionType: model.TransactionIncome, Category: model.CategoryRent, Amount: 4000, LeaseID: &leaseID},
		// All of these must be ignored.
		{TransactionType: model.TransactionIncome, Category: model.CategoryDeposit, Amount: 5000, LeaseID: &leaseID},
		{TransactionType: model.TransactionExpense, Category: model.CategoryRent, Amount: 1000, LeaseID: &leaseID},
		{TransactionType: model.TransactionIncome, Category: model.CategoryRent, Amount: 7000, LeaseID: &otherLease},
		{TransactionType: model.TransactionIncome, Category: model.CategoryRent, Amount: 7000},
	}

	got := AggregateRent(lease, txns)
	if got.ReceivedRent != 13000 {
		t.Errorf("received = %.2f, want 13000", got.ReceivedRent)
	}
	if got.UnpaidRent != 5000 {
		t.Errorf("unpaid = %.2f, want 5000", got.UnpaidRent)
	}
	if got.IsFullyPaid {
		t.Error("lease should not be fully paid")
	}
	if math.Abs(got.PaymentRate-72.2) > 0.1 {
		t.Errorf("payment rate = %.2f, want about 72.2", got.PaymentRate)
	}
}

func TestAggregateRent_FullyPaid(t *testing.T) {
	leaseID := uuid.New()
	lease := model.Lease{ID: leaseID, TotalContractAmount: 18000}
	txns := []model.Transaction{
		{TransactionType: model.TransactionIncome, Category: model.CategoryRent, Amount: 18000, LeaseID: &leaseID},
	}
	got := AggregateRent(lease, txns)
	if !got.IsFullyPaid || got.UnpaidRent != 0 {
		t.Errorf("fully_paid=%v unpaid=%.2f, want true and 0", got.IsFullyPaid, got.UnpaidRent)
	}
	if got.PaymentRate != 100 {
		t.Errorf("payment rate = %.2f, want 100", got.PaymentRate)
	}
}

func TestAggregateRent_Overpaid(t *testing.T) {
	leaseID := uuid.New()
	lease := model.Lease{ID: leaseID, TotalContractAmount: 10000}
	txns := []model.Transaction{
		{TransactionType: model.TransactionIncome, Category: model.CategoryRent, Amount: 12000, LeaseID: &leaseID},
	}
	got := AggregateRent(lease, txns)
	if got.UnpaidRent != 0 {
		t.Errorf("unpaid = %.2f, want 0 (clamped)", got.UnpaidRent)
	}
	if !got.IsFullyPaid {
		t.Error("overpaid lease should count as fully paid")
	}
}

func TestAggregateRent_FallsBackToEstimate(t *testing.T) {
	leaseID := uuid.New()
	lease := model.Lease{
		ID:          leaseID,
		LeaseStart:  date(2024, 1, 1),
		LeaseEnd:    date(2024, 7, 1),
		MonthlyRent: 3000,
		// TotalContractAmount left at zero.
	}
	got := AggregateRent(lease, nil)
	if got.TotalRent != 18000 {
		t.Errorf("total = %.2f, want estimated 18000", got.TotalRent)
	}
	if got.UnpaidRent != 18000 || got.IsFullyPaid {
		t.Errorf("unpaid=%.2f fully_paid=%v", got.UnpaidRent, got.IsFullyPaid)
	}
}

func TestAggregateRent_ZeroTotalNoDivision(t *testing.T) {
	lease := model.Lease{ID: uuid.New()}
	got := AggregateRent(lease, nil)
	if got.PaymentRate != 0 {
		t.Errorf("payment rate = %.2f, want 0 when total is 0", got.PaymentRate)
	}
	if got.IsFullyPaid {
		t.Error("zero-total lease must not be fully paid")
	}
}

func TestAggregateRent_Invariant(t *testing.T) {
	// received + unpaid == total whenever received <= total.
	leaseID := uuid.New()
	lease := model.Lease{ID: leaseID, TotalContractAmount: 20000}
	for _, received := range []float64{0, 1, 9999.5, 20000} {
		txns := []model.Transaction{
			{TransactionType: model.TransactionIncome, Category: model.CategoryRent, Amount: received, LeaseID: &leaseID},
		}
		got := AggregateRent(lease, txns)
		if math.Abs(got.ReceivedRent+got.UnpaidRent-20000) > 1e-9 {
			t.Errorf("received=%.2f: received+unpaid = %.2f, want 20000", received, got.ReceivedRent+got.UnpaidRent)
		}
		if got.IsFullyPaid != (got.UnpaidRent == 0) {
			t.Errorf("received=%.2f: fully_paid=%v but unpaid=%.2f", received, got.IsFullyPaid, got.UnpaidRent)
		}
	}
}
