package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/repository"
)

// CatalogService covers the plain CRUD entities: properties, tenants,
// parking spaces and maintenance tickets.
type CatalogService struct {
	properties *repository.PropertyRepository
	tenants    *repository.TenantRepository
	parking    *repository.ParkingRepository
	tickets    *repository.TicketRepository
}

func NewCatalogService(
	properties *repository.PropertyRepository,
	tenants *repository.TenantRepository,
	parking *repository.ParkingRepository,
	tickets *repository.TicketRepository,
) *CatalogService {
	return &CatalogService{
		properties: properties,
		tenants:    tenants,
		parking:    parking,
		tickets:    tickets,
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *CatalogService) ListProperties(ctx context.Context) ([]model.Property, error) {
	return s.properties.List(ctx)
}

func (s *CatalogService) GetProperty(ctx context.Context, id uuid.UUID) (*model.Property, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return property, nil
}

func (s *CatalogService) CreateProperty(ctx context.Context, property *model.Property) error {
	if property.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if property.MonthlyRent < 0 || property.Area < 0 {
		return fmt.Errorf("%w: amounts must not be negative", ErrInvalidInput)
	}
	if property.Status == "" {
		property.Status = model.PropertyStatusVacant
	}
	property.ID = uuid.New()
	if property.Photos == "" {
		property.Photos = "[]"
	}
	return s.properties.Create(ctx, property)
}

func (s *CatalogService) UpdateProperty(ctx context.Context, id uuid.UUID, updated *model.Property) (*model.Property, error) {
	if updated.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	property.Name = updated.Name
	property.Address = updated.Address
	property.Area = updated.Area
	property.MonthlyRent = updated.MonthlyRent
	property.Status = updated.Status
	property.Description = updated.Description
	if updated.Photos != "" {
		property.Photos = updated.Photos
	}
	if err := s.properties.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *CatalogService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.properties.Delete(ctx, id))
}

func (s *CatalogService) ListTenants(ctx context.Context) ([]model.Tenant, error) {
	return s.tenants.List(ctx)
}

func (s *CatalogService) GetTenant(ctx context.Context, id uuid.UUID) (*model.Tenant, error) {
	tenant, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return tenant, nil
}

func (s *CatalogService) CreateTenant(ctx context.Context, tenant *model.Tenant) error {
	if tenant.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	tenant.ID = uuid.New()
	return s.tenants.Create(ctx, tenant)
}

func (s *CatalogService) UpdateTenant(ctx context.Context, id uuid.UUID, updated *model.Tenant) (*model.Tenant, error) {
	if updated.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	tenant, err := s.tenants.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	tenant.Name = updated.Name
	tenant.Phone = updated.Phone
	tenant.IDNumber = updated.IDNumber
	tenant.Email = updated.Email
	tenant.Notes = updated.Notes
	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *CatalogService) DeleteTenant(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.tenants.Delete(ctx, id))
}

func (s *CatalogService) ListParkingSpaces(ctx context.Context) ([]model.ParkingSpace, error) {
	return s.parking.List(ctx)
}

func (s *CatalogService) GetParkingSpace(ctx context.Context, id uuid.UUID) (*model.ParkingSpace, error) {
	space, err := s.parking.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return space, nil
}

func (s *CatalogService) CreateParkingSpace(ctx context.Context, space *model.ParkingSpace) error {
	if space.SpaceNumber == "" {
		return fmt.Errorf("%w: space_number is required", ErrInvalidInput)
	}
	if space.MonthlyRent < 0 {
		return fmt.Errorf("%w: monthly_rent must not be negative", ErrInvalidInput)
	}
	if space.Status == "" {
		space.Status = model.PropertyStatusVacant
	}
	space.ID = uuid.New()
	return s.parking.Create(ctx, space)
}

func (s *CatalogService) UpdateParkingSpace(ctx context.Context, id uuid.UUID, updated *model.ParkingSpace) (*model.ParkingSpace, error) {
	if updated.SpaceNumber == "" {
		return nil, fmt.Errorf("%w: space_number is required", ErrInvalidInput)
	}
	space, err := s.parking.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	space.SpaceNumber = updated.SpaceNumber
	space.Location = updated.Location
	space.MonthlyRent = updated.MonthlyRent
	space.Status = updated.Status
	space.Description = updated.Description
	if err := s.parking.Update(ctx, space); err != nil {
		return nil, err
	}
	return space, nil
}

func (s *CatalogService) DeleteParkingSpace(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.parking.Delete(ctx, id))
}

func (s *CatalogService) ListTickets(ctx context.Context, status *model.TicketStatus) ([]model.MaintenanceTicket, error) {
	return s.tickets.List(ctx, status)
}

func (s *CatalogService) GetTicket(ctx context.Context, id uuid.UUID) (*model.MaintenanceTicket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return ticket, nil
}

func (s *CatalogService) CreateTicket(ctx context.Context, ticket *model.MaintenanceTicket) error {
	if ticket.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if ticket.Priority == "" {
		ticket.Priority = model.TicketPriorityMedium
	}
	if ticket.Status == "" {
		ticket.Status = model.TicketStatusOpen
	}
	if ticket.ReportedAt.IsZero() {
		ticket.ReportedAt = time.Now()
	}
	ticket.ID = uuid.New()
	return s.tickets.Create(ctx, ticket)
}

func (s *CatalogService) UpdateTicket(ctx context.Context, id uuid.UUID, updated *model.MaintenanceTicket) (*model.MaintenanceTicket, error) {
	if updated.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	// Stamp the resolution time on the transition into resolved.
	if updated.Status == model.TicketStatusResolved && ticket.Status != model.TicketStatusResolved {
		now := time.Now()
		ticket.ResolvedAt = &now
	}
	ticket.Title = updated.Title
	ticket.Description = updated.Description
	ticket.Priority = updated.Priority
	ticket.Status = updated.Status
	ticket.Cost = updated.Cost
	ticket.Notes = updated.Notes
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (s *CatalogService) DeleteTicket(ctx context.Context, id uuid.UUID) error {
	return mapNotFound(s.tickets.Delete(ctx, id))
}
