package notification

import (
	"context"

	"plate2share/domain"
	"plate2share/entities"

	"gorm.io/gorm"
)

type (
	NotificationRepository interface {
		CreateNotification(ctx context.Context, notification *entities.Notification) error
		GetNotifications(ctx context.Context, recipientID string, query domain.NotificationQuery) ([]*entities.Notification, int64, error)
		CountUnread(ctx context.Context, recipientID string) (int64, error)
		GetNotificationByID(ctx context.Context, id string, recipientID string) (*entities.Notification, error)
		SaveNotification(ctx context.Context, notification *entities.Notification) error
		MarkAllRead(ctx context.Context, recipientID string) (int64, error)
		DeleteNotification(ctx context.Context, id string, recipientID string) (bool, error)
	}

	notificationRepository struct {
		db *gorm.DB
	}
)

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepository) GetNotifications(ctx context.Context, recipientID string, query domain.NotificationQuery) ([]*entities.Notification, int64, error) {
	var notifications []*entities.Notification
	var count int64

	tx := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("recipient_id = ?", recipientID)

	if query.Read != nil {
		tx = tx.Where("read = ?", *query.Read)
	}

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := tx.
		Order("created_at DESC").
		Offset(query.Skip).
		Limit(query.Limit).
		Find(&notifications).Error; err != nil {
		return nil, 0, err
	}

	return notifications, count, nil
}

func (r *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetNotificationByID is scoped to the recipient so a notification owned by
// someone else is indistinguishable from a missing one.
func (r *notificationRepository) GetNotificationByID(ctx context.Context, id string, recipientID string) (*entities.Notification, error) {
	var notification entities.Notification
	if err := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		First(&notification).Error; err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) SaveNotification(ctx context.Context, notification *entities.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *notificationRepository) DeleteNotification(ctx context.Context, id string, recipientID string) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Delete(&entities.Notification{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
