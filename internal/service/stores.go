package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mchen-dev/rentops/internal/billing"
	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/repository"
)

// Store interfaces are the slices of the repository layer each service
// needs; the concrete gorm repositories satisfy them.

type LeaseStore interface {
	List(ctx context.Context) ([]model.Lease, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Lease, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Lease, error)
	Create(ctx context.Context, lease *model.Lease) error
	Update(ctx context.Context, lease *model.Lease) error
	Delete(ctx context.Context, id uuid.UUID) error
	SetStatus(ctx context.Context, id uuid.UUID, status model.LeaseStatus) error
	CreateRenewal(ctx context.Context, oldID uuid.UUID, renewal *model.Lease) error
}

type PropertyStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Property, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.PropertyStatus) error
}

type ParkingStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.ParkingSpace, error)
	SetStatus(ctx context.Context, id uuid.UUID, status model.PropertyStatus) error
}

type TenantStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tenant, error)
}

type ScheduleStore interface {
	ListByLease(ctx context.Context, leaseID uuid.UUID) ([]model.PaymentSchedule, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.PaymentSchedule, error)
	CountByLease(ctx context.Context, leaseID uuid.UUID) (int64, error)
	CreateBatch(ctx context.Context, entries []model.PaymentSchedule) error
	ReplaceForLease(ctx context.Context, leaseID uuid.UUID, entries []model.PaymentSchedule) error
	Update(ctx context.Context, entry *model.PaymentSchedule) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransactionStore interface {
	List(ctx context.Context, filter repository.TransactionFilter) ([]model.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	CreateWithAdjustments(ctx context.Context, transaction *model.Transaction, adjustments []billing.ScheduleAdjustment) error
	UpdateWithAdjustments(ctx context.Context, transaction *model.Transaction, adjustments []billing.ScheduleAdjustment) error
	DeleteWithAdjustments(ctx context.Context, id uuid.UUID, adjustments []billing.ScheduleAdjustment) error
}

// nowFunc lets tests pin the clock; billing functions always receive now
// explicitly.
type nowFunc func() time.Time

func defaultNow() time.Time { return time.Now() }
