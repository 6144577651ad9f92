package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/model"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) List(ctx context.Context, status *model.TicketStatus) ([]model.MaintenanceTicket, error) {
	query := r.db.WithContext(ctx).Order("reported_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	var tickets []model.MaintenanceTicket
	err := query.Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MaintenanceTicket, error) {
	var ticket model.MaintenanceTicket
	if err := r.db.WithContext(ctx).First(&ticket, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) Create(ctx context.Context, ticket *model.MaintenanceTicket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *TicketRepository) Update(ctx context.Context, ticket *model.MaintenanceTicket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

func (r *TicketRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.MaintenanceTicket{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TicketRepository) CountOpen(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM maintenance_tickets WHERE status != ?
	`, model.TicketStatusResolved).Scan(&count).Error
	return count, err
}
