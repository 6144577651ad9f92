package model

// ContractSheet is everything the contract PDF needs, gathered by the report
// service.
type ContractSheet struct {
	Lease     Lease
	Tenant    Tenant
	AssetName string // property name or parking space number
	Schedule  []PaymentSchedule
}

type MonthlyFinance struct {
	Month   int
	Income  float64
	Expense float64
}

// FinanceReport is one year of income and expense totals for the Excel
// export.
type FinanceReport struct {
	Year         int
	Months       []MonthlyFinance
	TotalIncome  float64
	TotalExpense float64
}
