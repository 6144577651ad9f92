package model

import (
	"time"

	"github.com/google/uuid"
)

type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "低"
	TicketPriorityMedium TicketPriority = "中"
	TicketPriorityHigh   TicketPriority = "高"
)

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "待处理"
	TicketStatusInProgress TicketStatus = "处理中"
	TicketStatusResolved   TicketStatus = "已完成"
)

type MaintenanceTicket struct {
	ID             uuid.UUID      `json:"id"`
	PropertyID     *uuid.UUID     `json:"property_id,omitempty"`
	ParkingSpaceID *uuid.UUID     `json:"parking_space_id,omitempty"`
	TenantID       *uuid.UUID     `json:"tenant_id,omitempty"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Priority       TicketPriority `json:"priority"`
	Status         TicketStatus   `json:"status"`
	ReportedAt     time.Time      `json:"reported_at"`
	ResolvedAt     *time.Time     `json:"resolved_at,omitempty"`
	Cost           float64        `json:"cost"`
	Notes          string         `json:"notes"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

func (MaintenanceTicket) TableName() string { return "maintenance_tickets" }
