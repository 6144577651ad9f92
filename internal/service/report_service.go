package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mchen-dev/rentops/internal/model"
	"github.com/mchen-dev/rentops/internal/repository"
)

type ContractPDFGenerator interface {
	Generate(sheet model.ContractSheet) ([]byte, error)
}

type FinanceExcelGenerator interface {
	Generate(report model.FinanceReport) ([]byte, error)
}

// TransactionReportStore is the aggregate query the Excel export needs.
type TransactionReportStore interface {
	MonthlyTotals(ctx context.Context, year int) ([]repository.MonthlyTotal, error)
}

type ReportService struct {
	leases     LeaseStore
	tenants    TenantStore
	properties PropertyStore
	parking    ParkingStore
	schedules  ScheduleStore
	totals     TransactionReportStore
	pdf        ContractPDFGenerator
	excel      FinanceExcelGenerator
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func NewReportService(
	leases LeaseStore,
	tenants TenantStore,
	properties PropertyStore,
	parking ParkingStore,
	schedules ScheduleStore,
	totals TransactionReportStore,
	pdf ContractPDFGenerator,
	excel FinanceExcelGenerator,
) *ReportService {
	return &ReportService{
		leases:     leases,
		tenants:    tenants,
		properties: properties,
		parking:    parking,
		schedules:  schedules,
		totals:     totals,
		pdf:        pdf,
		excel:      excel,
	}
}

// ContractPDF renders a one-page contract sheet for a lease.
func (s *ReportService) ContractPDF(ctx context.Context, leaseID uuid.UUID) (*ExportResult, error) {
	lease, err := s.leases.GetByID(ctx, leaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	tenant, err := s.tenants.GetByID(ctx, lease.TenantID)
	if err != nil {
		return nil, err
	}

	var assetName string
	switch lease.LeaseType {
	case model.LeaseTypeProperty:
		property, err := s.properties.GetByID(ctx, *lease.PropertyID)
		if err != nil {
			return nil, err
		}
		assetName = property.Name
	case model.LeaseTypeParking:
		space, err := s.parking.GetByID(ctx, *lease.ParkingSpaceID)
		if err != nil {
			return nil, err
		}
		assetName = space.SpaceNumber
	}

	schedule, err := s.schedules.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}

	content, err := s.pdf.Generate(model.ContractSheet{
		Lease:     *lease,
		Tenant:    *tenant,
		AssetName: assetName,
		Schedule:  schedule,
	})
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("lease-%s-%s.pdf",
		sanitizeFileName(tenant.Name), lease.LeaseStart.Format("20060102"))
	return &ExportResult{FileName: fileName, Content: content}, nil
}

// FinanceExcel builds the yearly income/expense workbook.
func (s *ReportService) FinanceExcel(ctx context.Context, year int) (*ExportResult, error) {
	if year < 2000 || year > 2200 {
		return nil, fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	rows, err := s.totals.MonthlyTotals(ctx, year)
	if err != nil {
		return nil, err
	}

	report := model.FinanceReport{Year: year}
	byMonth := make(map[int]*model.MonthlyFinance)
	for month := 1; month <= 12; month++ {
		report.Months = append(report.Months, model.MonthlyFinance{Month: month})
		byMonth[month] = &report.Months[month-1]
	}
	for _, row := range rows {
		entry, ok := byMonth[row.Month]
		if !ok {
			continue
		}
		switch row.Type {
		case model.TransactionIncome:
			entry.Income = row.Total
			report.TotalIncome += row.Total
		case model.TransactionExpense:
			entry.Expense = row.Total
			report.TotalExpense += row.Total
		}
	}

	content, err := s.excel.Generate(report)
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("finance-%d.xlsx", year),
		Content:  content,
	}, nil
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	cleaned := strings.Trim(string(result), "-")
	if cleaned == "" {
		return "export"
	}
	return cleaned
}
