package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/billing"
	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/repository"
)

type TransactionService struct {
	transactions TransactionStore
	schedules    ScheduleStore
	leases       LeaseStore
}

func NewTransactionService(transactions TransactionStore, schedules ScheduleStore, leases LeaseStore) *TransactionService {
	return &TransactionService{
		transactions: transactions,
		schedules:    schedules,
		leases:       leases,
	}
}

type TransactionInput struct {
	TransactionType   model.TransactionType
	Category          string
	Amount            float64
	TransactionDate   time.Time
	PropertyID        *uuid.UUID
	TenantID          *uuid.UUID
	LeaseID           *uuid.UUID
	PaymentScheduleID *uuid.UUID
	Description       string
}

func (s *TransactionService) validate(ctx context.Context, input TransactionInput) error {
	switch input.TransactionType {
	case model.TransactionIncome, model.TransactionExpense:
	default:
		return fmt.Errorf("%w: unknown transaction_type %q", ErrInvalidInput, input.TransactionType)
	}
	if !billing.ValidCategory(input.Category, input.TransactionType) {
		return fmt.Errorf("%w: unknown category %q for %s", ErrInvalidInput, input.Category, input.TransactionType)
	}
	if input.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if input.TransactionDate.IsZero() {
		return fmt.Errorf("%w: transaction_date is required", ErrInvalidInput)
	}

	if input.PaymentScheduleID != nil {
		// A schedule reference only makes sense for rent income, and the
		// entry must belong to the referenced lease: reconciling against a
		// foreign lease's entry is rejected, not silently applied.
		if input.TransactionType != model.TransactionIncome || input.Category != model.CategoryRent {
			return fmt.Errorf("%w: payment_schedule_id only applies to rent income", ErrInvalidInput)
		}
		if input.LeaseID == nil {
			return fmt.Errorf("%w: payment_schedule_id requires lease_id", ErrInvalidInput)
		}
		entry, err := s.schedules.GetByID(ctx, *input.PaymentScheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: payment schedule entry", ErrNotFound)
			}
			return err
		}
		if entry.LeaseID != *input.LeaseID {
			return fmt.Errorf("%w: schedule entry belongs to another lease", ErrInvalidInput)
		}
	}

	if input.LeaseID != nil {
		if _, err := s.leases.GetByID(ctx, *input.LeaseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: lease", ErrNotFound)
			}
			return err
		}
	}
	return nil
}

func (s *TransactionService) build(input TransactionInput) model.Transaction {
	return model.Transaction{
		TransactionType:   input.TransactionType,
		Category:          input.Category,
		Amount:            input.Amount,
		TransactionDate:   billing.DateOnly(input.TransactionDate),
		PropertyID:        input.PropertyID,
		TenantID:          input.TenantID,
		LeaseID:           input.LeaseID,
		PaymentScheduleID: input.PaymentScheduleID,
		Description:       input.Description,
	}
}

// Create records a transaction. A rent-income transaction referencing a
// schedule entry reconciles that entry in the same database transaction.
func (s *TransactionService) Create(ctx context.Context, input TransactionInput) (*model.Transaction, error) {
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}
	transaction := s.build(input)
	transaction.ID = uuid.New()

	adjustments := billing.PlanAdjustments(nil, &transaction)
	if err := s.transactions.CreateWithAdjustments(ctx, &transaction, adjustments); err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Update edits a transaction with symmetric reconciliation: the previous
// amount is reversed against the previous schedule reference before the new
// amount is applied to the new one.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, input TransactionInput) (*model.Transaction, error) {
	prev, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.validate(ctx, input); err != nil {
		return nil, err
	}

	next := s.build(input)
	next.ID = prev.ID
	next.CreatedAt = prev.CreatedAt

	adjustments := billing.PlanAdjustments(prev, &next)
	if err := s.transactions.UpdateWithAdjustments(ctx, &next, adjustments); err != nil {
		return nil, err
	}
	return &next, nil
}

// Delete removes a transaction and reverses its reconciliation effect.
func (s *TransactionService) Delete(ctx context.Context, id uuid.UUID) error {
	prev, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	adjustments := billing.PlanAdjustments(prev, nil)
	return s.transactions.DeleteWithAdjustments(ctx, id, adjustments)
}

func (s *TransactionService) Get(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	transaction, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return transaction, nil
}

func (s *TransactionService) List(ctx context.Context, filter repository.TransactionFilter) ([]model.Transaction, error) {
	return s.transactions.List(ctx, filter)
}
