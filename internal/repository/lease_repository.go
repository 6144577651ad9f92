package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/model"
)

type LeaseRepository struct {
	db *gorm.DB
}

func NewLeaseRepository(db *gorm.DB) *LeaseRepository {
	return &LeaseRepository{db: db}
}

func (r *LeaseRepository) List(ctx context.Context) ([]model.Lease, error) {
	var leases []model.Lease
	err := r.db.WithContext(ctx).Order("lease_start DESC").Find(&leases).Error
	return leases, err
}

func (r *LeaseRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Lease, error) {
	var leases []model.Lease
	err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("lease_start DESC").
		Find(&leases).Error
	return leases, err
}

func (r *LeaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lease, error) {
	var lease model.Lease
	if err := r.db.WithContext(ctx).First(&lease, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lease, nil
}

func (r *LeaseRepository) Create(ctx context.Context, lease *model.Lease) error {
	return r.db.WithContext(ctx).Create(lease).Error
}

func (r *LeaseRepository) Update(ctx context.Context, lease *model.Lease) error {
	return r.db.WithContext(ctx).Save(lease).Error
}

func (r *LeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Lease{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SetStatus persists a freshly classified lease status. Used by the explicit
// status reconciliation operation, never as a side effect of reads.
func (r *LeaseRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.LeaseStatus) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE leases SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id).Error
}

// CreateRenewal inserts the renewal lease and marks the superseded lease
// expired in one transaction. The old lease is kept, not deleted.
func (r *LeaseRepository) CreateRenewal(ctx context.Context, oldID uuid.UUID, renewal *model.Lease) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(renewal).Error; err != nil {
			return err
		}
		return tx.Exec(`
			UPDATE leases SET status = ?, updated_at = NOW() WHERE id = ?
		`, model.LeaseStatusExpired, oldID).Error
	})
}
