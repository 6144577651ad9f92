package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchen-dev/rentops/internal/model"
)

func newTransactionFixture() (*TransactionService, *fakeTransactionStore, *fakeScheduleStore, *model.Lease, *model.PaymentSchedule) {
	lease := &model.Lease{
		ID:            uuid.New(),
		TenantID:      uuid.New(),
		LeaseType:     model.LeaseTypeProperty,
		LeaseStart:    date(2024, time.January, 1),
		LeaseEnd:      date(2024, time.July, 1),
		MonthlyRent:   3000,
		PaymentMethod: model.PaymentMethodQuarterly,
	}
	entry := &model.PaymentSchedule{
		ID:           uuid.New(),
		LeaseID:      lease.ID,
		PeriodNumber: 1,
		PeriodStart:  date(2024, time.January, 1),
		PeriodEnd:    date(2024, time.April, 1),
		DueDate:      date(2024, time.January, 1),
		Amount:       9000,
		Status:       model.PaymentStatusUnpaid,
	}
	schedules := newFakeScheduleStore(entry)
	transactions := newFakeTransactionStore(schedules)
	svc := NewTransactionService(transactions, schedules, newFakeLeaseStore(lease))
	return svc, transactions, schedules, lease, entry
}

func rentIncomeInput(lease *model.Lease, entry *model.PaymentSchedule, amount float64) TransactionInput {
	input := TransactionInput{
		TransactionType: model.TransactionIncome,
		Category:        model.CategoryRent,
		Amount:          amount,
		TransactionDate: date(2024, time.January, 5),
		LeaseID:         &lease.ID,
	}
	if entry != nil {
		input.PaymentScheduleID = &entry.ID
	}
	return input
}

func TestTransactionServiceCreateReconciles(t *testing.T) {
	svc, _, schedules, lease, entry := newTransactionFixture()

	txn, err := svc.Create(context.Background(), rentIncomeInput(lease, entry, 9000))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, txn.ID)

	reconciled := schedules.entries[entry.ID]
	assert.Equal(t, 9000.0, reconciled.PaidAmount)
	assert.Equal(t, model.PaymentStatusPaid, reconciled.Status)
}

func TestTransactionServiceCreatePartialPayments(t *testing.T) {
	svc, _, schedules, lease, entry := newTransactionFixture()

	_, err := svc.Create(context.Background(), rentIncomeInput(lease, entry, 4000))
	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusUnpaid, schedules.entries[entry.ID].Status)

	// Second payment against the same period completes it.
	_, err = svc.Create(context.Background(), rentIncomeInput(lease, entry, 5000))
	require.NoError(t, err)
	assert.Equal(t, 9000.0, schedules.entries[entry.ID].PaidAmount)
	assert.Equal(t, model.PaymentStatusPaid, schedules.entries[entry.ID].Status)
}

func TestTransactionServiceCreateWithoutScheduleRef(t *testing.T) {
	svc, store, schedules, lease, entry := newTransactionFixture()

	_, err := svc.Create(context.Background(), rentIncomeInput(lease, nil, 9000))
	require.NoError(t, err)
	assert.Empty(t, store.applied)
	assert.Equal(t, 0.0, schedules.entries[entry.ID].PaidAmount)
}

func TestTransactionServiceValidation(t *testing.T) {
	svc, _, _, lease, entry := newTransactionFixture()

	otherLease := uuid.New()
	tests := []struct {
		name    string
		mutate  func(*TransactionInput)
		wantErr error
	}{
		{"unknown type", func(in *TransactionInput) { in.TransactionType = "transfer" }, ErrInvalidInput},
		{"category of the wrong type", func(in *TransactionInput) {
			in.TransactionType = model.TransactionExpense
			in.Category = model.CategoryRent
		}, ErrInvalidInput},
		{"unknown category", func(in *TransactionInput) { in.Category = "装修费" }, ErrInvalidInput},
		{"zero amount", func(in *TransactionInput) { in.Amount = 0 }, ErrInvalidInput},
		{"missing date", func(in *TransactionInput) { in.TransactionDate = time.Time{} }, ErrInvalidInput},
		{"schedule ref on non-rent income", func(in *TransactionInput) { in.Category = model.CategoryDeposit }, ErrInvalidInput},
		{"schedule ref without lease", func(in *TransactionInput) { in.LeaseID = nil }, ErrInvalidInput},
		{"schedule ref of another lease", func(in *TransactionInput) { in.LeaseID = &otherLease }, ErrInvalidInput},
		{"unknown lease", func(in *TransactionInput) {
			in.PaymentScheduleID = nil
			in.LeaseID = &otherLease
		}, ErrNotFound},
		{"unknown schedule entry", func(in *TransactionInput) {
			id := uuid.New()
			in.PaymentScheduleID = &id
		}, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := rentIncomeInput(lease, entry, 9000)
			tt.mutate(&input)
			_, err := svc.Create(context.Background(), input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransactionServiceUpdateRebalances(t *testing.T) {
	svc, _, schedules, lease, entry := newTransactionFixture()

	txn, err := svc.Create(context.Background(), rentIncomeInput(lease, entry, 9000))
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusPaid, schedules.entries[entry.ID].Status)

	// Edit the amount down: the old 9000 is reversed and 5000 reapplied, so
	// the period drops back to partially paid.
	updated, err := svc.Update(context.Background(), txn.ID, rentIncomeInput(lease, entry, 5000))
	require.NoError(t, err)
	assert.Equal(t, txn.ID, updated.ID)
	assert.Equal(t, 5000.0, schedules.entries[entry.ID].PaidAmount)
	assert.Equal(t, model.PaymentStatusUnpaid, schedules.entries[entry.ID].Status)
}

func TestTransactionServiceUpdateAfterManualDrift(t *testing.T) {
	svc, _, schedules, lease, entry := newTransactionFixture()

	txn, err := svc.Create(context.Background(), rentIncomeInput(lease, entry, 4000))
	require.NoError(t, err)

	// A manual schedule edit lowered the paid amount below the recorded
	// payment. Reversing 4000 clamps to zero, then the new 3000 applies on
	// top of that, so the entry ends at 3000 rather than zero.
	schedules.entries[entry.ID].PaidAmount = 1000

	_, err = svc.Update(context.Background(), txn.ID, rentIncomeInput(lease, entry, 3000))
	require.NoError(t, err)
	assert.Equal(t, 3000.0, schedules.entries[entry.ID].PaidAmount)
	assert.Equal(t, model.PaymentStatusUnpaid, schedules.entries[entry.ID].Status)
}

func TestTransactionServiceUpdateMovesScheduleRef(t *testing.T) {
	svc, _, schedules, lease, entry := newTransactionFixture()

	second := &model.PaymentSchedule{
		ID:           uuid.New(),
		LeaseID:      lease.ID,
		PeriodNumber: 2,
		PeriodStart:  date(2024, time.April, 1),
		PeriodEnd:    date(2024, time.July, 1),
		DueDate:      date(2024, time.April, 1),
		Amount:       9000,
		Status:       model.PaymentStatusUnpaid,
	}
	schedules.entries[second.ID] = second

	txn, err := svc.Create(context.Background(), rentIncomeInput(lease, entry, 9000))
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), txn.ID, rentIncomeInput(lease, second, 9000))
	require.NoError(t, err)

	assert.Equal(t, 0.0, schedules.entries[entry.ID].PaidAmount)
	assert.Equal(t, model.PaymentStatusUnpaid, schedules.entries[entry.ID].Status)
	assert.Equal(t, 9000.0, schedules.entries[second.ID].PaidAmount)
	assert.Equal(t, model.PaymentStatusPaid, schedules.entries[second.ID].Status)
}

func TestTransactionServiceDeleteReverses(t *testing.T) {
	svc, store, schedules, lease, entry := newTransactionFixture()

	txn, err := svc.Create(context.Background(), rentIncomeInput(lease, entry, 9000))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), txn.ID))
	assert.Equal(t, 0.0, schedules.entries[entry.ID].PaidAmount)
	assert.Equal(t, model.PaymentStatusUnpaid, schedules.entries[entry.ID].Status)
	assert.Empty(t, store.transactions)

	assert.ErrorIs(t, svc.Delete(context.Background(), txn.ID), ErrNotFound)
}

func TestTransactionServiceDeleteClampsAtZero(t *testing.T) {
	svc, _, schedules, lease, entry := newTransactionFixture()

	txn, err := svc.Create(context.Background(), rentIncomeInput(lease, entry, 4000))
	require.NoError(t, err)

	// A manual edit lowered the paid amount below the recorded payment.
	schedules.entries[entry.ID].PaidAmount = 1000

	require.NoError(t, svc.Delete(context.Background(), txn.ID))
	assert.Equal(t, 0.0, schedules.entries[entry.ID].PaidAmount)
}

func TestTransactionServiceExpense(t *testing.T) {
	svc, store, _, _, _ := newTransactionFixture()

	txn, err := svc.Create(context.Background(), TransactionInput{
		TransactionType: model.TransactionExpense,
		Category:        model.CategoryMaintenance,
		Amount:          850,
		TransactionDate: date(2024, time.February, 10),
		Description:     "水管维修",
	})
	require.NoError(t, err)
	assert.Empty(t, store.applied)
	assert.Equal(t, model.TransactionExpense, store.transactions[txn.ID].TransactionType)
}
