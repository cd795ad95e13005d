package notification

import (
	"context"
	"errors"

	"plate2share/domain"
	"plate2share/entities"

	"gorm.io/gorm"
)

const DefaultNotificationLimit = 20

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, recipientID string, query domain.NotificationQuery) (*domain.NotificationListResponse, error)
		MarkAsRead(ctx context.Context, id string, recipientID string) (*domain.NotificationResponse, error)
		MarkAllAsRead(ctx context.Context, recipientID string) (int64, error)
		DeleteNotification(ctx context.Context, id string, recipientID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) GetNotifications(ctx context.Context, recipientID string, query domain.NotificationQuery) (*domain.NotificationListResponse, error) {
	if query.Limit <= 0 {
		query.Limit = DefaultNotificationLimit
	}
	if query.Skip < 0 {
		query.Skip = 0
	}

	notifications, count, err := s.notificationRepository.GetNotifications(ctx, recipientID, query)
	if err != nil {
		return nil, err
	}

	// unread_count covers the whole unread set, not the current page.
	unreadCount, err := s.notificationRepository.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		result = append(result, toNotificationResponse(n))
	}

	return &domain.NotificationListResponse{
		Notifications: result,
		Total:         count,
		UnreadCount:   unreadCount,
		Limit:         query.Limit,
		Skip:          query.Skip,
	}, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id string, recipientID string) (*domain.NotificationResponse, error) {
	notification, err := s.notificationRepository.GetNotificationByID(ctx, id, recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}

	notification.Read = true
	if err := s.notificationRepository.SaveNotification(ctx, notification); err != nil {
		return nil, err
	}

	return toNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, recipientID string) (int64, error) {
	return s.notificationRepository.MarkAllRead(ctx, recipientID)
}

func (s *notificationService) DeleteNotification(ctx context.Context, id string, recipientID string) error {
	deleted, err := s.notificationRepository.DeleteNotification(ctx, id, recipientID)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func toNotificationResponse(notification *entities.Notification) *domain.NotificationResponse {
	var relatedDonationID *string
	if notification.RelatedDonationID != nil {
		id := notification.RelatedDonationID.String()
		relatedDonationID = &id
	}
	return &domain.NotificationResponse{
		ID:                notification.ID.String(),
		Type:              notification.Type,
		Title:             notification.Title,
		Message:           notification.Message,
		RelatedDonationID: relatedDonationID,
		Read:              notification.Read,
		CreatedAt:         notification.CreatedAt,
	}
}
