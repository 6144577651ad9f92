package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/model"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) List(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&properties).Error
	return properties, err
}

func (r *PropertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *PropertyRepository) Update(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

func (r *PropertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus groups properties by their occupancy status.
func (r *PropertyRepository) CountByStatus(ctx context.Context) (map[model.PropertyStatus]int64, error) {
	var rows []struct {
		Status model.PropertyStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*) AS count FROM properties GROUP BY status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[model.PropertyStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (r *PropertyRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.PropertyStatus) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE properties SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id).Error
}
