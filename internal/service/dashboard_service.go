package service

import (
	"context"
	"time"

	"github.com/mchen-dev/rentops/internal/billing"
	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/repository"
)

type DashboardService struct {
	leases       *repository.LeaseRepository
	properties   *repository.PropertyRepository
	transactions *repository.TransactionRepository
	tickets      *repository.TicketRepository
	now          nowFunc
}

func NewDashboardService(
	leases *repository.LeaseRepository,
	properties *repository.PropertyRepository,
	transactions *repository.TransactionRepository,
	tickets *repository.TicketRepository,
) *DashboardService {
	return &DashboardService{
		leases:       leases,
		properties:   properties,
		transactions: transactions,
		tickets:      tickets,
		now:          defaultNow,
	}
}

type DashboardStats struct {
	VacantProperties      int64   `json:"vacant_properties"`
	RentedProperties      int64   `json:"rented_properties"`
	MaintenanceProperties int64   `json:"maintenance_properties"`
	ActiveLeases          int64   `json:"active_leases"`
	ExpiringLeases        int64   `json:"expiring_leases"`
	ExpiredLeases         int64   `json:"expired_leases"`
	OpenTickets           int64   `json:"open_tickets"`
	MonthIncome           float64 `json:"month_income"`
	MonthExpense          float64 `json:"month_expense"`
	UnpaidRent            float64 `json:"unpaid_rent"`
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	now := billing.DateOnly(s.now())

	// Lease counts from freshly classified statuses, not the stored column,
	// so the dashboard never shows stale figures.
	leases, err := s.leases.List(ctx)
	if err != nil {
		return nil, err
	}
	rentByLease, err := s.transactions.RentIncomeByLease(ctx)
	if err != nil {
		return nil, err
	}
	for _, lease := range leases {
		switch billing.ClassifyLeaseStatus(lease.LeaseStart, lease.LeaseEnd, now) {
		case model.LeaseStatusActive:
			stats.ActiveLeases++
		case model.LeaseStatusExpiring:
			stats.ExpiringLeases++
		case model.LeaseStatusExpired:
			stats.ExpiredLeases++
		}

		total := lease.TotalContractAmount
		if total <= 0 {
			total = billing.EstimateTotalAmount(lease.LeaseStart, lease.LeaseEnd, lease.MonthlyRent)
		}
		if unpaid := total - rentByLease[lease.ID]; unpaid > 0 {
			stats.UnpaidRent += unpaid
		}
	}

	propertyCounts, err := s.properties.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	stats.VacantProperties = propertyCounts[model.PropertyStatusVacant]
	stats.RentedProperties = propertyCounts[model.PropertyStatusRented]
	stats.MaintenanceProperties = propertyCounts[model.PropertyStatusMaintenance]

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := billing.AddMonths(monthStart, 1)
	if stats.MonthIncome, err = s.transactions.SumForPeriod(ctx, model.TransactionIncome, monthStart, monthEnd); err != nil {
		return nil, err
	}
	if stats.MonthExpense, err = s.transactions.SumForPeriod(ctx, model.TransactionExpense, monthStart, monthEnd); err != nil {
		return nil, err
	}
	if stats.OpenTickets, err = s.tickets.CountOpen(ctx); err != nil {
		return nil, err
	}
	return stats, nil
}
