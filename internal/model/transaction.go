package model

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "收入"
	TransactionExpense TransactionType = "支出"
)

// Storage-layer category enumerants. The UI labels ("租金收入" etc.) map to
// these via billing.Category.
const (
	CategoryRent        = "租金"
	CategoryDeposit     = "押金"
	CategoryMaintenance = "维修费"
	CategoryUtilities   = "水电费"
	CategoryManagement  = "物业费"
	CategoryParking     = "停车费"
	CategoryOther       = "其他"
)

type Transaction struct {
	ID                uuid.UUID       `json:"id"`
	TransactionType   TransactionType `json:"transaction_type"`
	Category          string          `json:"category"`
	Amount            float64         `json:"amount"`
	TransactionDate   time.Time       `json:"transaction_date" gorm:"type:date"`
	PropertyID        *uuid.UUID      `json:"property_id,omitempty"`
	TenantID          *uuid.UUID      `json:"tenant_id,omitempty"`
	LeaseID           *uuid.UUID      `json:"lease_id,omitempty"`
	PaymentScheduleID *uuid.UUID      `json:"payment_schedule_id,omitempty"`
	Description       string          `json:"description"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (Transaction) TableName() string { return "transactions" }

// IsRentIncome reports whether the transaction counts toward a lease's rent.
func (t Transaction) IsRentIncome() bool {
	return t.TransactionType == TransactionIncome && t.Category == CategoryRent
}
