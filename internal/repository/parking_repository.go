package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/model"
)

type ParkingRepository struct {
	db *gorm.DB
}

func NewParkingRepository(db *gorm.DB) *ParkingRepository {
	return &ParkingRepository{db: db}
}

func (r *ParkingRepository) List(ctx context.Context) ([]model.ParkingSpace, error) {
	var spaces []model.ParkingSpace
	err := r.db.WithContext(ctx).Order("space_number ASC").Find(&spaces).Error
	return spaces, err
}

func (r *ParkingRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ParkingSpace, error) {
	var space model.ParkingSpace
	if err := r.db.WithContext(ctx).First(&space, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &space, nil
}

func (r *ParkingRepository) Create(ctx context.Context, space *model.ParkingSpace) error {
	return r.db.WithContext(ctx).Create(space).Error
}

func (r *ParkingRepository) Update(ctx context.Context, space *model.ParkingSpace) error {
	return r.db.WithContext(ctx).Save(space).Error
}

func (r *ParkingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ParkingSpace{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ParkingRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.PropertyStatus) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE parking_spaces SET status = ?, updated_at = NOW() WHERE id = ?
	`, status, id).Error
}
