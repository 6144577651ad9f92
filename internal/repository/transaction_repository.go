package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/billing"
	"github.com/mchen-dev/rentops/internal/model"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

type TransactionFilter struct {
	LeaseID         *uuid.UUID
	PropertyID      *uuid.UUID
	TransactionType *model.TransactionType
	From, To        *time.Time
}

func (r *TransactionRepository) List(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error) {
	query := r.db.WithContext(ctx).Order("transaction_date DESC, created_at DESC")
	if filter.LeaseID != nil {
		query = query.Where("lease_id = ?", *filter.LeaseID)
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.TransactionType != nil {
		query = query.Where("transaction_type = ?", *filter.TransactionType)
	}
	if filter.From != nil {
		query = query.Where("transaction_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("transaction_date < ?", *filter.To)
	}
	var transactions []model.Transaction
	err := query.Find(&transactions).Error
	return transactions, err
}

func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	var transaction model.Transaction
	if err := r.db.WithContext(ctx).First(&transaction, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// CreateWithAdjustments inserts the transaction and applies its schedule
// reconciliation in one database transaction, so a failed reconciliation
// rolls back the insert instead of silently drifting.
func (r *TransactionRepository) CreateWithAdjustments(ctx context.Context, transaction *model.Transaction, adjustments []billing.ScheduleAdjustment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}
		return applyAdjustments(tx, adjustments)
	})
}

// UpdateWithAdjustments saves the edited transaction together with the
// reverse-then-reapply schedule deltas.
func (r *TransactionRepository) UpdateWithAdjustments(ctx context.Context, transaction *model.Transaction, adjustments []billing.ScheduleAdjustment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(transaction).Error; err != nil {
			return err
		}
		return applyAdjustments(tx, adjustments)
	})
}

// DeleteWithAdjustments removes the transaction and reverses its effect on
// the schedule it referenced.
func (r *TransactionRepository) DeleteWithAdjustments(ctx context.Context, id uuid.UUID, adjustments []billing.ScheduleAdjustment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&model.Transaction{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return applyAdjustments(tx, adjustments)
	})
}

// applyAdjustments mirrors billing.ApplyPayment in SQL: the paid amount
// accumulates and clamps at zero, and the status flips on the amount-due
// threshold. Adjustments run one UPDATE each, in planned order, so a reversal
// and a reapply against the same entry clamp independently. Doing the
// arithmetic in the database keeps concurrent reconciliations of the same
// entry additive instead of last-write-wins.
func applyAdjustments(tx *gorm.DB, adjustments []billing.ScheduleAdjustment) error {
	for _, adj := range adjustments {
		err := tx.Exec(`
			UPDATE payment_schedules
			SET
				paid_amount = GREATEST(paid_amount + ?, 0),
				status = CASE
					WHEN GREATEST(paid_amount + ?, 0) >= amount THEN ?
					ELSE ?
				END,
				updated_at = NOW()
			WHERE id = ?
		`, adj.Delta, adj.Delta, model.PaymentStatusPaid, model.PaymentStatusUnpaid, adj.ScheduleID).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// RentIncomeByLease sums rent-income transactions per lease across the whole
// table, for dashboard unpaid-rent figures.
func (r *TransactionRepository) RentIncomeByLease(ctx context.Context) (map[uuid.UUID]float64, error) {
	var rows []struct {
		LeaseID uuid.UUID
		Total   float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT lease_id, COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE lease_id IS NOT NULL
			AND transaction_type = ?
			AND category = ?
		GROUP BY lease_id
	`, model.TransactionIncome, model.CategoryRent).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make(map[uuid.UUID]float64, len(rows))
	for _, row := range rows {
		totals[row.LeaseID] = row.Total
	}
	return totals, nil
}

// MonthlyTotal is one month's income or expense sum.
type MonthlyTotal struct {
	Month int
	Type  model.TransactionType
	Total float64
}

func (r *TransactionRepository) MonthlyTotals(ctx context.Context, year int) ([]MonthlyTotal, error) {
	var rows []struct {
		Month int
		Type  model.TransactionType
		Total float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			EXTRACT(MONTH FROM transaction_date)::int AS month,
			transaction_type AS type,
			COALESCE(SUM(amount), 0) AS total
		FROM transactions
		WHERE EXTRACT(YEAR FROM transaction_date) = ?
		GROUP BY month, transaction_type
		ORDER BY month ASC
	`, year).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	totals := make([]MonthlyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, MonthlyTotal{Month: row.Month, Type: row.Type, Total: row.Total})
	}
	return totals, nil
}

// SumForPeriod totals transactions of one type inside [from, to).
func (r *TransactionRepository) SumForPeriod(ctx context.Context, txnType model.TransactionType, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE transaction_type = ?
			AND transaction_date >= ?
			AND transaction_date < ?
	`, txnType, from, to).Scan(&total).Error
	return total, err
}
