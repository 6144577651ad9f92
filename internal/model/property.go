package model

import (
	"time"

	"github.com/google/uuid"
)

type PropertyStatus string

const (
	PropertyStatusVacant      PropertyStatus = "空置"
	PropertyStatusRented      PropertyStatus = "已出租"
	PropertyStatusMaintenance PropertyStatus = "维护中"
)

type Property struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Area        float64        `json:"area"` // square meters
	MonthlyRent float64        `json:"monthly_rent"`
	Status      PropertyStatus `json:"status"`
	Description string         `json:"description"`
	Photos      string         `json:"photos"` // JSON-encoded array of file paths
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (Property) TableName() string { return "properties" }
