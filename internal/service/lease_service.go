package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/billing"
	"github.com/mchen-dev/rentops/internal/config"
	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/repository"
)

type LeaseService struct {
	leases       LeaseStore
	properties   PropertyStore
	parking      ParkingStore
	tenants      TenantStore
	transactions TransactionStore
	window       int
	now          nowFunc
}

func NewLeaseService(
	leases LeaseStore,
	properties PropertyStore,
	parking ParkingStore,
	tenants TenantStore,
	transactions TransactionStore,
	cfg *config.Config,
) *LeaseService {
	window := billing.DefaultExpiringWindowDays
	if cfg != nil && cfg.Lease.ExpiringWindowDays > 0 {
		window = cfg.Lease.ExpiringWindowDays
	}
	return &LeaseService{
		leases:       leases,
		properties:   properties,
		parking:      parking,
		tenants:      tenants,
		transactions: transactions,
		window:       window,
		now:          defaultNow,
	}
}

type LeaseInput struct {
	TenantID            uuid.UUID
	LeaseType           model.LeaseType
	PropertyID          *uuid.UUID
	ParkingSpaceID      *uuid.UUID
	LeaseStart          time.Time
	LeaseEnd            time.Time
	MonthlyRent         float64
	DepositPaid         float64
	TotalContractAmount float64
	PaymentMethod       model.PaymentMethod
	CarNumber           *string
	CarModel            *string
	Notes               string
	ContractPhotos      string
}

func (s *LeaseService) validate(input LeaseInput) error {
	start, end := billing.DateOnly(input.LeaseStart), billing.DateOnly(input.LeaseEnd)
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: lease dates are required", ErrInvalidInput)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: lease_end must be after lease_start", ErrInvalidInput)
	}
	if input.MonthlyRent <= 0 {
		return fmt.Errorf("%w: monthly_rent must be positive", ErrInvalidInput)
	}
	if input.DepositPaid < 0 || input.TotalContractAmount < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalidInput)
	}
	if _, ok := billing.CadenceForMethod(input.PaymentMethod); !ok {
		return fmt.Errorf("%w: unknown payment_method %q", ErrInvalidInput, input.PaymentMethod)
	}

	// Exactly one occupancy branch, consistent with the lease type.
	switch input.LeaseType {
	case model.LeaseTypeProperty:
		if input.PropertyID == nil || input.ParkingSpaceID != nil {
			return fmt.Errorf("%w: property lease requires property_id and no parking_space_id", ErrInvalidInput)
		}
		if input.CarNumber != nil || input.CarModel != nil {
			return fmt.Errorf("%w: car fields only apply to parking leases", ErrInvalidInput)
		}
	case model.LeaseTypeParking:
		if input.ParkingSpaceID == nil || input.PropertyID != nil {
			return fmt.Errorf("%w: parking lease requires parking_space_id and no property_id", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown lease_type %q", ErrInvalidInput, input.LeaseType)
	}
	return nil
}

func (s *LeaseService) checkReferences(ctx context.Context, input LeaseInput) error {
	if _, err := s.tenants.GetByID(ctx, input.TenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: tenant", ErrNotFound)
		}
		return err
	}
	switch input.LeaseType {
	case model.LeaseTypeProperty:
		if _, err := s.properties.GetByID(ctx, *input.PropertyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: property", ErrNotFound)
			}
			return err
		}
	case model.LeaseTypeParking:
		if _, err := s.parking.GetByID(ctx, *input.ParkingSpaceID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: parking space", ErrNotFound)
			}
			return err
		}
	}
	return nil
}

func (s *LeaseService) Create(ctx context.Context, input LeaseInput) (*model.Lease, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	start, end := billing.DateOnly(input.LeaseStart), billing.DateOnly(input.LeaseEnd)
	total := input.TotalContractAmount
	if total == 0 {
		total = billing.EstimateTotalAmount(start, end, input.MonthlyRent)
	}

	lease := &model.Lease{
		ID:                  uuid.New(),
		TenantID:            input.TenantID,
		LeaseType:           input.LeaseType,
		PropertyID:          input.PropertyID,
		ParkingSpaceID:      input.ParkingSpaceID,
		LeaseStart:          start,
		LeaseEnd:            end,
		MonthlyRent:         input.MonthlyRent,
		DepositPaid:         input.DepositPaid,
		TotalContractAmount: total,
		PaymentMethod:       input.PaymentMethod,
		Status:              billing.ClassifyLeaseStatusWindow(start, end, s.now(), s.window),
		CarNumber:           input.CarNumber,
		CarModel:            input.CarModel,
		Notes:               input.Notes,
		ContractPhotos:      input.ContractPhotos,
	}
	if err := s.leases.Create(ctx, lease); err != nil {
		return nil, err
	}
	if err := s.markOccupied(ctx, lease); err != nil {
		return nil, err
	}
	return lease, nil
}

func (s *LeaseService) markOccupied(ctx context.Context, lease *model.Lease) error {
	switch lease.LeaseType {
	case model.LeaseTypeProperty:
		return s.properties.SetStatus(ctx, *lease.PropertyID, model.PropertyStatusRented)
	case model.LeaseTypeParking:
		return s.parking.SetStatus(ctx, *lease.ParkingSpaceID, model.PropertyStatusRented)
	}
	return nil
}

// List returns all leases with their status freshly classified against the
// current date. The persisted status is left untouched; ReconcileStatuses is
// the explicit operation that writes stale statuses back.
func (s *LeaseService) List(ctx context.Context) ([]model.Lease, error) {
	leases, err := s.leases.List(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range leases {
		leases[i].Status = billing.ClassifyLeaseStatusWindow(leases[i].LeaseStart, leases[i].LeaseEnd, now, s.window)
	}
	return leases, nil
}

// ListByTenant returns a tenant's leases, freshly classified like List.
func (s *LeaseService) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]model.Lease, error) {
	if _, err := s.tenants.GetByID(ctx, tenantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	leases, err := s.leases.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range leases {
		leases[i].Status = billing.ClassifyLeaseStatusWindow(leases[i].LeaseStart, leases[i].LeaseEnd, now, s.window)
	}
	return leases, nil
}

func (s *LeaseService) Get(ctx context.Context, id uuid.UUID) (*model.Lease, error) {
	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	lease.Status = billing.ClassifyLeaseStatusWindow(lease.LeaseStart, lease.LeaseEnd, s.now(), s.window)
	return lease, nil
}

func (s *LeaseService) Update(ctx context.Context, id uuid.UUID, input LeaseInput) (*model.Lease, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	start, end := billing.DateOnly(input.LeaseStart), billing.DateOnly(input.LeaseEnd)
	total := input.TotalContractAmount
	if total == 0 {
		total = billing.EstimateTotalAmount(start, end, input.MonthlyRent)
	}

	prev := *lease
	lease.TenantID = input.TenantID
	lease.LeaseType = input.LeaseType
	lease.PropertyID = input.PropertyID
	lease.ParkingSpaceID = input.ParkingSpaceID
	lease.LeaseStart = start
	lease.LeaseEnd = end
	lease.MonthlyRent = input.MonthlyRent
	lease.DepositPaid = input.DepositPaid
	lease.TotalContractAmount = total
	lease.PaymentMethod = input.PaymentMethod
	lease.Status = billing.ClassifyLeaseStatusWindow(start, end, s.now(), s.window)
	lease.CarNumber = input.CarNumber
	lease.CarModel = input.CarModel
	lease.Notes = input.Notes
	lease.ContractPhotos = input.ContractPhotos

	if err := s.leases.Update(ctx, lease); err != nil {
		return nil, err
	}
	// Re-pointing the lease at another asset frees the old one and marks the
	// new one rented.
	if occupancyMoved(prev, *lease) {
		if err := s.freeAssetIfUnused(ctx, &prev); err != nil {
			return nil, err
		}
		if err := s.markOccupied(ctx, lease); err != nil {
			return nil, err
		}
	}
	return lease, nil
}

func (s *LeaseService) Delete(ctx context.Context, id uuid.UUID) error {
	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if err := s.leases.Delete(ctx, id); err != nil {
		return err
	}
	return s.freeAssetIfUnused(ctx, lease)
}

func occupancyMoved(prev, next model.Lease) bool {
	a, b := prev.Occupancy(), next.Occupancy()
	return a.Type != b.Type || a.PropertyID != b.PropertyID || a.ParkingSpaceID != b.ParkingSpaceID
}

// freeAssetIfUnused marks the lease's asset vacant unless some other lease
// still holds it. A superseded lease (stored status 已到期) and a lease whose
// term has run out do not count as holding the asset, so deleting a
// superseded lease leaves its renewal's asset rented.
func (s *LeaseService) freeAssetIfUnused(ctx context.Context, lease *model.Lease) error {
	occ := lease.Occupancy()
	var assetID uuid.UUID
	switch occ.Type {
	case model.LeaseTypeProperty:
		assetID = occ.PropertyID
	case model.LeaseTypeParking:
		assetID = occ.ParkingSpaceID
	default:
		return nil
	}

	leases, err := s.leases.List(ctx)
	if err != nil {
		return err
	}
	now := s.now()
	for _, other := range leases {
		if other.ID == lease.ID || other.Status == model.LeaseStatusExpired {
			continue
		}
		if billing.ClassifyLeaseStatusWindow(other.LeaseStart, other.LeaseEnd, now, s.window) == model.LeaseStatusExpired {
			continue
		}
		otherOcc := other.Occupancy()
		if otherOcc.Type != occ.Type {
			continue
		}
		if otherOcc.PropertyID == occ.PropertyID && otherOcc.ParkingSpaceID == occ.ParkingSpaceID {
			return nil
		}
	}

	switch occ.Type {
	case model.LeaseTypeProperty:
		return s.properties.SetStatus(ctx, assetID, model.PropertyStatusVacant)
	case model.LeaseTypeParking:
		return s.parking.SetStatus(ctx, assetID, model.PropertyStatusVacant)
	}
	return nil
}

// Renew creates a follow-up lease with the term shifted forward and marks the
// old lease expired. The shift defaults to the billing cadence of the lease's
// payment method; the old lease is superseded, never deleted.
func (s *LeaseService) Renew(ctx context.Context, id uuid.UUID, months int) (*model.Lease, error) {
	old, err := s.leases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if months < 0 {
		return nil, fmt.Errorf("%w: renewal months must not be negative", ErrInvalidInput)
	}
	if months == 0 {
		cadence, ok := billing.CadenceForMethod(old.PaymentMethod)
		if !ok {
			return nil, fmt.Errorf("%w: lease has unknown payment_method %q", ErrInvalidInput, old.PaymentMethod)
		}
		months = cadence
	}

	start, end := billing.RenewalTerm(old.LeaseStart, old.LeaseEnd, months)
	renewal := &model.Lease{
		ID:                  uuid.New(),
		TenantID:            old.TenantID,
		LeaseType:           old.LeaseType,
		PropertyID:          old.PropertyID,
		ParkingSpaceID:      old.ParkingSpaceID,
		LeaseStart:          start,
		LeaseEnd:            end,
		MonthlyRent:         old.MonthlyRent,
		DepositPaid:         old.DepositPaid,
		TotalContractAmount: billing.EstimateTotalAmount(start, end, old.MonthlyRent),
		PaymentMethod:       old.PaymentMethod,
		Status:              billing.ClassifyLeaseStatusWindow(start, end, s.now(), s.window),
		CarNumber:           old.CarNumber,
		CarModel:            old.CarModel,
	}
	if err := s.leases.CreateRenewal(ctx, old.ID, renewal); err != nil {
		return nil, err
	}
	return renewal, nil
}

// RentStatus aggregates the rent-income transactions recorded against a
// lease.
func (s *LeaseService) RentStatus(ctx context.Context, id uuid.UUID) (*billing.RentFigures, error) {
	lease, err := s.leases.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	transactions, err := s.transactions.List(ctx, repository.TransactionFilter{LeaseID: &id})
	if err != nil {
		return nil, err
	}
	figures := billing.AggregateRent(*lease, transactions)
	return &figures, nil
}

// ReconcileStatuses persists a freshly classified status for every lease
// whose stored status has gone stale. Returns how many were updated.
func (s *LeaseService) ReconcileStatuses(ctx context.Context) (int, error) {
	leases, err := s.leases.List(ctx)
	if err != nil {
		return 0, err
	}
	now := s.now()
	updated := 0
	for _, lease := range leases {
		current := billing.ClassifyLeaseStatusWindow(lease.LeaseStart, lease.LeaseEnd, now, s.window)
		if current == lease.Status {
			continue
		}
		if err := s.leases.SetStatus(ctx, lease.ID, current); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
