package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mchen-dev/rentops/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders a one-page lease contract sheet.
func (g *Generator) Generate(sheet model.ContractSheet) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Lease Contract Sheet", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Term: %s - %s",
		formatDate(sheet.Lease.LeaseStart), formatDate(sheet.Lease.LeaseEnd)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.addField(pdf, "Tenant", sheet.Tenant.Name)
	g.addField(pdf, "Phone", sheet.Tenant.Phone)
	if sheet.Lease.LeaseType == model.LeaseTypeParking {
		g.addField(pdf, "Parking space", sheet.AssetName)
		if sheet.Lease.CarNumber != nil {
			g.addField(pdf, "Car number", *sheet.Lease.CarNumber)
		}
		if sheet.Lease.CarModel != nil {
			g.addField(pdf, "Car model", *sheet.Lease.CarModel)
		}
	} else {
		g.addField(pdf, "Property", sheet.AssetName)
	}
	g.addField(pdf, "Monthly rent", formatAmount(sheet.Lease.MonthlyRent))
	g.addField(pdf, "Deposit", formatAmount(sheet.Lease.DepositPaid))
	g.addField(pdf, "Contract total", formatAmount(sheet.Lease.TotalContractAmount))
	g.addField(pdf, "Payment method", string(sheet.Lease.PaymentMethod))
	pdf.Ln(4)

	if len(sheet.Schedule) > 0 {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Payment schedule", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)

		headers := []string{"#", "Period start", "Period end", "Due date", "Amount", "Paid"}
		widths := []float64{12, 36, 36, 36, 30, 30}
		drawTableRow(pdf, g.fontName, headers, widths, true)
		for _, entry := range sheet.Schedule {
			row := []string{
				fmt.Sprintf("%d", entry.PeriodNumber),
				formatDate(entry.PeriodStart),
				formatDate(entry.PeriodEnd),
				formatDate(entry.DueDate),
				formatAmount(entry.Amount),
				formatAmount(entry.PaidAmount),
			}
			drawTableRow(pdf, g.fontName, row, widths, false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) addField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cells []string, widths []float64, header bool) {
	if header {
		pdf.SetFont(fontName, "B", 10)
	} else {
		pdf.SetFont(fontName, "", 10)
	}
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
