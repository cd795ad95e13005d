package domain

import (
	"errors"
	"time"

	"plate2share/entities"
)

var (
	MessageSuccessCreateDonation       = "donation created successfully"
	MessageSuccessGetDonations         = "donations retrieved successfully"
	MessageSuccessGetDonation          = "donation retrieved successfully"
	MessageSuccessUpdateDonationStatus = "donation status updated successfully"
	MessageSuccessDeleteDonation       = "donation deleted successfully"
	MessageSuccessUploadDonationImage  = "donation image uploaded successfully"

	MessageFailedCreateDonation       = "failed to create donation"
	MessageFailedGetDonations         = "failed to retrieve donations"
	MessageFailedGetDonation          = "failed to retrieve donation"
	MessageFailedUpdateDonationStatus = "failed to update donation status"
	MessageFailedDeleteDonation       = "failed to delete donation"
	MessageFailedUploadDonationImage  = "failed to upload donation image"

	ErrDonationNotFound      = errors.New("donation not found")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrInvalidUnit           = errors.New("invalid unit")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidExpiryDate     = errors.New("invalid expiry date")
	ErrEmptyDonationImage    = errors.New("donation image entry must not be empty")
	ErrInvalidUpdateField    = errors.New("invalid updates")
	ErrInvalidDonationStatus = errors.New("invalid donation status")
)

const (
	DonationStatusPending     = "pending"
	DonationStatusApproved    = "approved"
	DonationStatusCollected   = "collected"
	DonationStatusDistributed = "distributed"
	DonationStatusCancelled   = "cancelled"
)

type (
	CreateDonationRequest struct {
		FoodName      string                 `json:"food_name" validate:"required"`
		Description   string                 `json:"description" validate:"required"`
		Quantity      float64                `json:"quantity" validate:"required,min=1"`
		Unit          string                 `json:"unit" validate:"required,oneof=kg g pieces liters ml"`
		Category      string                 `json:"category" validate:"required,oneof=perishable non-perishable beverages snacks other"`
		ExpiryDate    string                 `json:"expiry_date" validate:"required"`
		PickupAddress entities.PickupAddress `json:"pickup_address"`
		Images        []string               `json:"images" validate:"omitempty,dive,required"`
	}

	// UpdateDonationStatusRequest is a closed patch. Handlers decode it with
	// DisallowUnknownFields so any key outside this set rejects the whole
	// request before a single field is applied.
	UpdateDonationStatusRequest struct {
		Status        *string    `json:"status" validate:"omitempty,oneof=pending approved collected distributed cancelled"`
		CollectedBy   *string    `json:"collected_by" validate:"omitempty,uuid"`
		CollectedAt   *time.Time `json:"collected_at"`
		DistributedTo *string    `json:"distributed_to"`
		DistributedAt *time.Time `json:"distributed_at"`
	}

	DonationQuery struct {
		Status   string
		Category string
		Donor    string
		SortBy   string
		Limit    int
		Skip     int
	}

	UserSummary struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	DonationResponse struct {
		ID            string                 `json:"id"`
		Donor         *UserSummary           `json:"donor,omitempty"`
		FoodName      string                 `json:"food_name"`
		Description   string                 `json:"description"`
		Quantity      float64                `json:"quantity"`
		Unit          string                 `json:"unit"`
		Category      string                 `json:"category"`
		ExpiryDate    time.Time              `json:"expiry_date"`
		PickupAddress entities.PickupAddress `json:"pickup_address"`
		Status        string                 `json:"status"`
		Images        []string               `json:"images"`
		CollectedBy   *UserSummary           `json:"collected_by,omitempty"`
		CollectedAt   *time.Time             `json:"collected_at,omitempty"`
		DistributedTo string                 `json:"distributed_to,omitempty"`
		DistributedAt *time.Time             `json:"distributed_at,omitempty"`
		CreatedAt     time.Time              `json:"created_at"`
		UpdatedAt     time.Time              `json:"updated_at"`
	}

	DonationListResponse struct {
		Donations []*DonationResponse `json:"donations"`
		Total     int64               `json:"total"`
		Limit     int                 `json:"limit"`
		Skip      int                 `json:"skip"`
	}
)
