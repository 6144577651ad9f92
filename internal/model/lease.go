package model

import (
	"time"

	"github.com/google/uuid"
)

type LeaseType string

const (
	LeaseTypeProperty LeaseType = "property"
	LeaseTypeParking  LeaseType = "parking"
)

// LeaseStatus values are the storage enumerants shown in the UI.
type LeaseStatus string

const (
	LeaseStatusNotEffective LeaseStatus = "未生效"
	LeaseStatusActive       LeaseStatus = "生效中"
	LeaseStatusExpiring     LeaseStatus = "即将到期"
	LeaseStatusExpired      LeaseStatus = "已到期"
)

// PaymentMethod determines the billing cadence of a lease.
type PaymentMethod string

const (
	PaymentMethodMonthly    PaymentMethod = "月付"
	PaymentMethodQuarterly  PaymentMethod = "季付"
	PaymentMethodSemiAnnual PaymentMethod = "半年付"
	PaymentMethodAnnual     PaymentMethod = "年付"
)

type Lease struct {
	ID                  uuid.UUID     `json:"id"`
	TenantID            uuid.UUID     `json:"tenant_id"`
	LeaseType           LeaseType     `json:"lease_type"`
	PropertyID          *uuid.UUID    `json:"property_id,omitempty"`
	ParkingSpaceID      *uuid.UUID    `json:"parking_space_id,omitempty"`
	LeaseStart          time.Time     `json:"lease_start" gorm:"type:date"`
	LeaseEnd            time.Time     `json:"lease_end" gorm:"type:date"`
	MonthlyRent         float64       `json:"monthly_rent"`
	DepositPaid         float64       `json:"deposit_paid"`
	TotalContractAmount float64       `json:"total_contract_amount"`
	PaymentMethod       PaymentMethod `json:"payment_method"`
	Status              LeaseStatus   `json:"status"`
	CarNumber           *string       `json:"car_number,omitempty"`
	CarModel            *string       `json:"car_model,omitempty"`
	Notes               string        `json:"notes"`
	ContractPhotos      string        `json:"contract_photos"` // JSON-encoded array of file paths
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

func (Lease) TableName() string { return "leases" }

// Occupancy is the tagged-union view of what a lease occupies. Exactly one
// branch is populated, consistent with LeaseType.
type Occupancy struct {
	Type           LeaseType
	PropertyID     uuid.UUID
	ParkingSpaceID uuid.UUID
	CarNumber      string
	CarModel       string
}

// Occupancy projects the lease's optional reference fields into the union.
func (l Lease) Occupancy() Occupancy {
	occ := Occupancy{Type: l.LeaseType}
	switch l.LeaseType {
	case LeaseTypeProperty:
		if l.PropertyID != nil {
			occ.PropertyID = *l.PropertyID
		}
	case LeaseTypeParking:
		if l.ParkingSpaceID != nil {
			occ.ParkingSpaceID = *l.ParkingSpaceID
		}
		if l.CarNumber != nil {
			occ.CarNumber = *l.CarNumber
		}
		if l.CarModel != nil {
			occ.CarModel = *l.CarModel
		}
	}
	return occ
}
