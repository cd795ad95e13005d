package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"`   // "user" or "admin"
	Status   string    `json:"status"` // "active" or "inactive"

	Donations     []*Donation     `gorm:"foreignKey:DonorID"`
	Notifications []*Notification `gorm:"foreignKey:RecipientID"`
	Timestamp
}
