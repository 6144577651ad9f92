package model

import (
	"time"

	"github.com/google/uuid"
)

type ParkingSpace struct {
	ID          uuid.UUID      `json:"id"`
	SpaceNumber string         `json:"space_number"`
	Location    string         `json:"location"`
	MonthlyRent float64        `json:"monthly_rent"`
	Status      PropertyStatus `json:"status"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (ParkingSpace) TableName() string { return "parking_spaces" }
