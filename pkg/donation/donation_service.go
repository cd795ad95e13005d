package donation

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"plate2share/domain"
	"plate2share/entities"
	"plate2share/internal/utils/storage"
	"plate2share/pkg/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultDonationLimit = 10

	expiryDateLayout = "2006-01-02"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, donorID string) (*domain.DonationResponse, error)
		GetDonations(ctx context.Context, query domain.DonationQuery) (*domain.DonationListResponse, error)
		GetDonationByID(ctx context.Context, id string) (*domain.DonationResponse, error)
		UpdateDonationStatus(ctx context.Context, id string, req domain.UpdateDonationStatusRequest, role string) (*domain.DonationResponse, error)
		DeleteDonation(ctx context.Context, id string, role string) error
		UploadDonationImage(ctx context.Context, id string, userID string, role string, image *multipart.FileHeader) (*domain.DonationResponse, error)
	}

	donationService struct {
		donationRepository     DonationRepository
		notificationRepository notification.NotificationRepository
		s3                     storage.AwsS3
	}
)

var validUnits = map[string]bool{
	"kg":     true,
	"g":      true,
	"pieces": true,
	"liters": true,
	"ml":     true,
}

var validCategories = map[string]bool{
	"perishable":     true,
	"non-perishable": true,
	"beverages":      true,
	"snacks":         true,
	"other":          true,
}

var validStatuses = map[string]bool{
	domain.DonationStatusPending:     true,
	domain.DonationStatusApproved:    true,
	domain.DonationStatusCollected:   true,
	domain.DonationStatusDistributed: true,
	domain.DonationStatusCancelled:   true,
}

func NewDonationService(
	donationRepository DonationRepository,
	notificationRepository notification.NotificationRepository,
	s3 storage.AwsS3,
) DonationService {
	return &donationService{
		donationRepository:     donationRepository,
		notificationRepository: notificationRepository,
		s3:                     s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, donorID string) (*domain.DonationResponse, error) {
	if req.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}
	if !validUnits[req.Unit] {
		return nil, domain.ErrInvalidUnit
	}
	if !validCategories[req.Category] {
		return nil, domain.ErrInvalidCategory
	}
	for _, image := range req.Images {
		if image == "" {
			return nil, domain.ErrEmptyDonationImage
		}
	}

	expiryDate, err := time.Parse(expiryDateLayout, req.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidExpiryDate
	}

	donorUUID, err := uuid.Parse(donorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	now := time.Now()
	// Status is forced to pending no matter what the payload carries.
	donation := &entities.Donation{
		ID:            uuid.New(),
		DonorID:       donorUUID,
		FoodName:      req.FoodName,
		Description:   req.Description,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Category:      req.Category,
		ExpiryDate:    expiryDate,
		PickupAddress: req.PickupAddress,
		Status:        domain.DonationStatusPending,
		Images:        req.Images,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.donationRepository.CreateDonation(ctx, donation); err != nil {
		return nil, err
	}

	return toDonationResponse(donation), nil
}

func (s *donationService) GetDonations(ctx context.Context, query domain.DonationQuery) (*domain.DonationListResponse, error) {
	if query.Limit <= 0 {
		query.Limit = DefaultDonationLimit
	}
	if query.Skip < 0 {
		query.Skip = 0
	}

	donations, count, err := s.donationRepository.GetDonations(ctx, query)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(donations))
	for _, d := range donations {
		result = append(result, toDonationResponse(d))
	}

	return &domain.DonationListResponse{
		Donations: result,
		Total:     count,
		Limit:     query.Limit,
		Skip:      query.Skip,
	}, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}
	return toDonationResponse(donation), nil
}

func (s *donationService) UpdateDonationStatus(ctx context.Context, id string, req domain.UpdateDonationStatusRequest, role string) (*domain.DonationResponse, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrUserNotAllowed
	}

	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	// Any status may be set from any other status. Transition ordering is
	// left to operator judgement, matching the permissive lifecycle.
	if req.Status != nil {
		if !validStatuses[*req.Status] {
			return nil, domain.ErrInvalidDonationStatus
		}
		donation.Status = *req.Status
	}
	if req.CollectedBy != nil {
		collectedBy, err := uuid.Parse(*req.CollectedBy)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		donation.CollectedByID = &collectedBy
		donation.CollectedBy = nil
	}
	if req.CollectedAt != nil {
		donation.CollectedAt = req.CollectedAt
	}
	if req.DistributedTo != nil {
		donation.DistributedTo = *req.DistributedTo
	}
	if req.DistributedAt != nil {
		donation.DistributedAt = req.DistributedAt
	}
	donation.UpdatedAt = time.Now()

	if err := s.donationRepository.SaveDonation(ctx, donation); err != nil {
		return nil, err
	}

	if req.Status != nil {
		s.notifyDonor(ctx, donation, *req.Status)
	}

	return toDonationResponse(donation), nil
}

// notifyDonor records a notification for the donor on meaningful status
// changes. Failures are swallowed: the status update already persisted.
func (s *donationService) notifyDonor(ctx context.Context, donation *entities.Donation, status string) {
	var notificationType, title string
	switch status {
	case domain.DonationStatusApproved:
		notificationType = domain.NotificationTypeDonationApproved
		title = "Donation approved"
	case domain.DonationStatusCollected:
		notificationType = domain.NotificationTypeDonationCollected
		title = "Donation collected"
	case domain.DonationStatusDistributed:
		notificationType = domain.NotificationTypeDonationDistributed
		title = "Donation distributed"
	default:
		return
	}

	donationID := donation.ID
	_ = s.notificationRepository.CreateNotification(ctx, &entities.Notification{
		ID:                uuid.New(),
		RecipientID:       donation.DonorID,
		Type:              notificationType,
		Title:             title,
		Message:           fmt.Sprintf("Your donation %q is now %s.", donation.FoodName, status),
		RelatedDonationID: &donationID,
		CreatedAt:         time.Now(),
	})
}

func (s *donationService) DeleteDonation(ctx context.Context, id string, role string) error {
	if role != domain.RoleAdmin {
		return domain.ErrUserNotAllowed
	}

	deleted, err := s.donationRepository.DeleteDonation(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrDonationNotFound
	}
	return nil
}

func (s *donationService) UploadDonationImage(ctx context.Context, id string, userID string, role string, image *multipart.FileHeader) (*domain.DonationResponse, error) {
	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if donation.DonorID.String() != userID && role != domain.RoleAdmin {
		return nil, domain.ErrUserNotAllowed
	}

	objectKey, err := s.s3.UploadFile(
		fmt.Sprintf("donation-%s-%d", donation.ID.String(), len(donation.Images)),
		image,
		"donations",
		storage.AllowImage...,
	)
	if err != nil {
		return nil, err
	}

	donation.Images = append(donation.Images, s.s3.GetPublicLinkKey(objectKey))
	donation.UpdatedAt = time.Now()

	if err := s.donationRepository.SaveDonation(ctx, donation); err != nil {
		return nil, err
	}

	return toDonationResponse(donation), nil
}

func toUserSummary(user *entities.User) *domain.UserSummary {
	if user == nil {
		return nil
	}
	return &domain.UserSummary{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func toDonationResponse(donation *entities.Donation) *domain.DonationResponse {
	return &domain.DonationResponse{
		ID:            donation.ID.String(),
		Donor:         toUserSummary(donation.Donor),
		FoodName:      donation.FoodName,
		Description:   donation.Description,
		Quantity:      donation.Quantity,
		Unit:          donation.Unit,
		Category:      donation.Category,
		ExpiryDate:    donation.ExpiryDate,
		PickupAddress: donation.PickupAddress,
		Status:        donation.Status,
		Images:        donation.Images,
		CollectedBy:   toUserSummary(donation.CollectedBy),
		CollectedAt:   donation.CollectedAt,
		DistributedTo: donation.DistributedTo,
		DistributedAt: donation.DistributedAt,
		CreatedAt:     donation.CreatedAt,
		UpdatedAt:     donation.UpdatedAt,
	}
}
