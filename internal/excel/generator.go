package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mchen-dev/rentops/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the yearly finance workbook: a summary sheet followed by
// the month-by-month detail.
func (g *Generator) Generate(report model.FinanceReport) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "汇总"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, report); err != nil {
		return nil, err
	}

	detailSheet := "月度明细"
	if _, err := file.NewSheet(detailSheet); err != nil {
		return nil, err
	}
	if err := g.writeDetail(file, detailSheet, report); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, report model.FinanceReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "年度")
	set("B1", report.Year)
	set("A2", "收入合计")
	set("B2", report.TotalIncome)
	set("A3", "支出合计")
	set("B3", report.TotalExpense)
	set("A4", "净收益")
	set("B4", report.TotalIncome-report.TotalExpense)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, report model.FinanceReport) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "月份")
	set("B1", "收入")
	set("C1", "支出")
	set("D1", "结余")

	for _, month := range report.Months {
		row := month.Month + 1
		set(fmt.Sprintf("A%d", row), fmt.Sprintf("%d月", month.Month))
		set(fmt.Sprintf("B%d", row), month.Income)
		set(fmt.Sprintf("C%d", row), month.Expense)
		set(fmt.Sprintf("D%d", row), month.Income-month.Expense)
	}
	return nil
}
