package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus of a schedule entry. Overdue is derived on read from the due
// date and is never persisted; the stored column only holds unpaid/paid.
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "未付款"
	PaymentStatusPaid    PaymentStatus = "已付款"
	PaymentStatusOverdue PaymentStatus = "逾期"
)

// PaymentSchedule is one billing period of a lease. Period numbers are
// 1-based and contiguous per lease; period date ranges partition the lease
// term with no gaps or overlaps.
type PaymentSchedule struct {
	ID           uuid.UUID     `json:"id"`
	LeaseID      uuid.UUID     `json:"lease_id"`
	PeriodNumber int           `json:"period_number"`
	PeriodStart  time.Time     `json:"period_start_date" gorm:"column:period_start_date;type:date"`
	PeriodEnd    time.Time     `json:"period_end_date" gorm:"column:period_end_date;type:date"`
	DueDate      time.Time     `json:"due_date" gorm:"type:date"`
	Amount       float64       `json:"amount"`
	PaidAmount   float64       `json:"paid_amount"`
	Status       PaymentStatus `json:"status"`
	Notes        string        `json:"notes"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (PaymentSchedule) TableName() string { return "payment_schedules" }
