package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/model"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]model.PaymentSchedule, error) {
	var entries []model.PaymentSchedule
	err := r.db.WithContext(ctx).
		Where("lease_id = ?", leaseID).
		Order("period_number ASC").
		Find(&entries).Error
	return entries, err
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentSchedule, error) {
	var entry model.PaymentSchedule
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ScheduleRepository) CountByLease(ctx context.Context, leaseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PaymentSchedule{}).
		Where("lease_id = ?", leaseID).
		Count(&count).Error
	return count, err
}

// CreateBatch inserts the generated periods in one transaction so a failed
// insert never leaves a partial schedule behind.
func (r *ScheduleRepository) CreateBatch(ctx context.Context, entries []model.PaymentSchedule) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entries).Error
	})
}

// ReplaceForLease deletes the lease's existing entries and inserts the new
// ones atomically. Explicit regeneration only; the normal generate path
// refuses to touch an existing schedule.
func (r *ScheduleRepository) ReplaceForLease(ctx context.Context, leaseID uuid.UUID, entries []model.PaymentSchedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.PaymentSchedule{}, "lease_id = ?", leaseID).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

func (r *ScheduleRepository) Update(ctx context.Context, entry *model.PaymentSchedule) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *ScheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PaymentSchedule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
