package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PickupAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

type Donation struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	DonorID       uuid.UUID      `json:"donor_id"`
	FoodName      string         `json:"food_name"`
	Description   string         `json:"description"`
	Quantity      float64        `json:"quantity"`
	Unit          string         `json:"unit"`     // kg, g, pieces, liters, ml
	Category      string         `json:"category"` // perishable, non-perishable, beverages, snacks, other
	ExpiryDate    time.Time      `json:"expiry_date"`
	PickupAddress PickupAddress  `gorm:"embedded;embeddedPrefix:pickup_" json:"pickup_address"`
	Status        string         `json:"status"` // pending, approved, collected, distributed, cancelled
	Images        pq.StringArray `gorm:"type:text[]" json:"images"`
	CollectedByID *uuid.UUID     `json:"collected_by_id,omitempty"`
	CollectedAt   *time.Time     `json:"collected_at,omitempty"`
	DistributedTo string         `json:"distributed_to,omitempty"`
	DistributedAt *time.Time     `json:"distributed_at,omitempty"`

	Donor       *User `gorm:"foreignKey:DonorID"`
	CollectedBy *User `gorm:"foreignKey:CollectedByID"`
	Timestamp
}
