package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/billing"
	"github.com/mchen-dev/rentops/internal/model"
)

type ScheduleService struct {
	schedules ScheduleStore
	leases    LeaseStore
	now       nowFunc
}

func NewScheduleService(schedules ScheduleStore, leases LeaseStore) *ScheduleService {
	return &ScheduleService{schedules: schedules, leases: leases, now: defaultNow}
}

// Generate creates the lease's payment schedule. It refuses to run when any
// entries already exist; Regenerate is the explicit path for replacing a
// schedule.
func (s *ScheduleService) Generate(ctx context.Context, leaseID uuid.UUID) ([]model.PaymentSchedule, error) {
	lease, err := s.leases.GetByID(ctx, leaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	count, err := s.schedules.CountByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: schedule already exists", ErrConflict)
	}

	entries, err := s.buildEntries(lease)
	if err != nil {
		return nil, err
	}
	if err := s.schedules.CreateBatch(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Regenerate replaces the existing schedule. Entries that already carry a
// reconciled payment block the operation so recorded income cannot be
// orphaned.
func (s *ScheduleService) Regenerate(ctx context.Context, leaseID uuid.UUID) ([]model.PaymentSchedule, error) {
	lease, err := s.leases.GetByID(ctx, leaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	existing, err := s.schedules.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	for _, entry := range existing {
		if entry.PaidAmount > 0 {
			return nil, fmt.Errorf("%w: period %d already has reconciled payments", ErrConflict, entry.PeriodNumber)
		}
	}

	entries, err := s.buildEntries(lease)
	if err != nil {
		return nil, err
	}
	if err := s.schedules.ReplaceForLease(ctx, leaseID, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *ScheduleService) buildEntries(lease *model.Lease) ([]model.PaymentSchedule, error) {
	cadence, ok := billing.CadenceForMethod(lease.PaymentMethod)
	if !ok {
		return nil, fmt.Errorf("%w: lease has unknown payment_method %q", ErrInvalidInput, lease.PaymentMethod)
	}
	periods, err := billing.GenerateSchedule(lease.LeaseStart, lease.LeaseEnd, lease.MonthlyRent, cadence)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	entries := make([]model.PaymentSchedule, 0, len(periods))
	for _, p := range periods {
		entries = append(entries, model.PaymentSchedule{
			ID:           uuid.New(),
			LeaseID:      lease.ID,
			PeriodNumber: p.Number,
			PeriodStart:  p.Start,
			PeriodEnd:    p.End,
			DueDate:      p.DueDate,
			Amount:       p.Amount,
			Status:       model.PaymentStatusUnpaid,
		})
	}
	return entries, nil
}

// ListByLease returns the lease's schedule with the effective status derived
// for display: unpaid entries past their due date show as overdue.
func (s *ScheduleService) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]model.PaymentSchedule, error) {
	entries, err := s.schedules.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range entries {
		entries[i].Status = billing.EffectiveScheduleStatus(entries[i], now)
	}
	return entries, nil
}

type ScheduleUpdateInput struct {
	Amount     float64
	PaidAmount float64
	Notes      string
}

// UpdateEntry applies a manual edit. The status is recomputed from the new
// amounts rather than accepted from the client.
func (s *ScheduleService) UpdateEntry(ctx context.Context, id uuid.UUID, input ScheduleUpdateInput) (*model.PaymentSchedule, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if input.PaidAmount < 0 {
		return nil, fmt.Errorf("%w: paid_amount must not be negative", ErrInvalidInput)
	}
	entry, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	entry.Amount = input.Amount
	entry.PaidAmount = 0
	entry.Notes = input.Notes
	*entry = billing.ApplyPayment(*entry, input.PaidAmount)

	if err := s.schedules.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *ScheduleService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	err := s.schedules.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
