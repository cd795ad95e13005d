package entities

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipientID       uuid.UUID  `gorm:"index:idx_notifications_recipient_read" json:"recipient_id"`
	Type              string     `json:"type"` // donation_request, donation_approved, donation_collected, donation_distributed, system, user_management
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	RelatedDonationID *uuid.UUID `json:"related_donation_id,omitempty"`
	Read              bool       `gorm:"default:false;index:idx_notifications_recipient_read" json:"read"`
	CreatedAt         time.Time  `gorm:"type:timestamp" json:"created_at"`

	Recipient       *User     `gorm:"foreignKey:RecipientID"`
	RelatedDonation *Donation `gorm:"foreignKey:RelatedDonationID"`
}
