package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetNotifications    = "notifications retrieved successfully"
	MessageSuccessMarkNotification    = "notification marked as read"
	MessageSuccessMarkAllNotification = "all notifications marked as read"
	MessageSuccessDeleteNotification  = "notification deleted successfully"

	MessageFailedGetNotifications    = "failed to retrieve notifications"
	MessageFailedMarkNotification    = "failed to mark notification as read"
	MessageFailedMarkAllNotification = "failed to mark all notifications as read"
	MessageFailedDeleteNotification  = "failed to delete notification"

	ErrNotificationNotFound    = errors.New("notification not found")
	ErrInvalidNotificationType = errors.New("invalid notification type")
)

const (
	NotificationTypeDonationRequest     = "donation_request"
	NotificationTypeDonationApproved    = "donation_approved"
	NotificationTypeDonationCollected   = "donation_collected"
	NotificationTypeDonationDistributed = "donation_distributed"
	NotificationTypeSystem              = "system"
	NotificationTypeUserManagement      = "user_management"
)

type (
	NotificationQuery struct {
		Read  *bool
		Limit int
		Skip  int
	}

	NotificationResponse struct {
		ID                string    `json:"id"`
		Type              string    `json:"type"`
		Title             string    `json:"title"`
		Message           string    `json:"message"`
		RelatedDonationID *string   `json:"related_donation_id,omitempty"`
		Read              bool      `json:"read"`
		CreatedAt         time.Time `json:"created_at"`
	}

	NotificationListResponse struct {
		Notifications []*NotificationResponse `json:"notifications"`
		Total         int64                   `json:"total"`
		UnreadCount   int64                   `json:"unread_count"`
		Limit         int                     `json:"limit"`
		Skip          int                     `json:"skip"`
	}
)
