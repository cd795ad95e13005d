package notification

import (
	"context"
	"sort"
	"testing"
	"time"

	"plate2share/domain"
	"plate2share/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	notifications []*entities.Notification
}

func (f *fakeNotificationRepository) CreateNotification(_ context.Context, notification *entities.Notification) error {
	stored := *notification
	f.notifications = append(f.notifications, &stored)
	return nil
}

func (f *fakeNotificationRepository) GetNotifications(_ context.Context, recipientID string, query domain.NotificationQuery) ([]*entities.Notification, int64, error) {
	var matched []*entities.Notification
	for _, n := range f.notifications {
		if n.RecipientID.String() != recipientID {
			continue
		}
		if query.Read != nil && n.Read != *query.Read {
			continue
		}
		matched = append(matched, n)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	if query.Skip >= len(matched) {
		return nil, total, nil
	}
	matched = matched[query.Skip:]
	if query.Limit < len(matched) {
		matched = matched[:query.Limit]
	}

	result := make([]*entities.Notification, 0, len(matched))
	for _, n := range matched {
		copied := *n
		result = append(result, &copied)
	}
	return result, total, nil
}

func (f *fakeNotificationRepository) CountUnread(_ context.Context, recipientID string) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.RecipientID.String() == recipientID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepository) GetNotificationByID(_ context.Context, id string, recipientID string) (*entities.Notification, error) {
	for _, n := range f.notifications {
		if n.ID.String() == id && n.RecipientID.String() == recipientID {
			copied := *n
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) SaveNotification(_ context.Context, notification *entities.Notification) error {
	for i, n := range f.notifications {
		if n.ID == notification.ID {
			stored := *notification
			f.notifications[i] = &stored
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeNotificationRepository) MarkAllRead(_ context.Context, recipientID string) (int64, error) {
	var count int64
	for _, n := range f.notifications {
		if n.RecipientID.String() == recipientID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepository) DeleteNotification(_ context.Context, id string, recipientID string) (bool, error) {
	for i, n := range f.notifications {
		if n.ID.String() == id && n.RecipientID.String() == recipientID {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func seedNotification(repo *fakeNotificationRepository, recipientID uuid.UUID, read bool, createdAt time.Time) *entities.Notification {
	notification := &entities.Notification{
		ID:          uuid.New(),
		RecipientID: recipientID,
		Type:        domain.NotificationTypeSystem,
		Title:       "Test",
		Message:     "Test message",
		Read:        read,
		CreatedAt:   createdAt,
	}
	_ = repo.CreateNotification(context.Background(), notification)
	return notification
}

func TestGetNotificationsScopedToRecipient(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)

	recipient := uuid.New()
	other := uuid.New()
	seedNotification(repo, recipient, false, time.Now())
	seedNotification(repo, other, false, time.Now())

	list, err := service.GetNotifications(context.Background(), recipient.String(), domain.NotificationQuery{})
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 1)
	assert.EqualValues(t, 1, list.Total)
	assert.EqualValues(t, 1, list.UnreadCount)
}

func TestGetNotificationsSortedNewestFirst(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)

	recipient := uuid.New()
	older := seedNotification(repo, recipient, false, time.Now().Add(-time.Hour))
	newer := seedNotification(repo, recipient, false, time.Now())

	list, err := service.GetNotifications(context.Background(), recipient.String(), domain.NotificationQuery{})
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, newer.ID.String(), list.Notifications[0].ID)
	assert.Equal(t, older.ID.String(), list.Notifications[1].ID)
}

func TestUnreadCountIgnoresPagingAndFilter(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)

	recipient := uuid.New()
	for i := 0; i < 3; i++ {
		seedNotification(repo, recipient, false, time.Now())
	}
	seedNotification(repo, recipient, true, time.Now())

	read := true
	list, err := service.GetNotifications(context.Background(), recipient.String(), domain.NotificationQuery{
		Read:  &read,
		Limit: 1,
	})
	require.NoError(t, err)
	assert.Len(t, list.Notifications, 1)
	assert.EqualValues(t, 1, list.Total)
	assert.EqualValues(t, 3, list.UnreadCount)
}

func TestMarkAsReadOwnNotification(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)

	recipient := uuid.New()
	seeded := seedNotification(repo, recipient, false, time.Now())

	marked, err := service.MarkAsRead(context.Background(), seeded.ID.String(), recipient.String())
	require.NoError(t, err)
	assert.True(t, marked.Read)
	assert.True(t, repo.notifications[0].Read)
}

func TestMarkAsReadOtherRecipientReportsNotFound(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)

	owner := uuid.New()
	seeded := seedNotification(repo, owner, false, time.Now())

	_, err := service.MarkAsRead(context.Background(), seeded.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	assert.False(t, repo.notifications[0].Read)
}

func TestMarkAllAsReadIdempotent(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)

	recipient := uuid.New()
	for i := 0; i < 3; i++ {
		seedNotification(repo, recipient, false, time.Now())
	}

	count, err := service.MarkAllAsRead(context.Background(), recipient.String())
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	list, err := service.GetNotifications(context.Background(), recipient.String(), domain.NotificationQuery{})
	require.NoError(t, err)
	assert.EqualValues(t, 0, list.UnreadCount)

	count, err = service.MarkAllAsRead(context.Background(), recipient.String())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestDeleteNotificationOwnership(t *testing.T) {
	repo := &fakeNotificationRepository{}
	service := NewNotificationService(repo)

	owner := uuid.New()
	seeded := seedNotification(repo, owner, false, time.Now())

	err := service.DeleteNotification(context.Background(), seeded.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
	assert.Len(t, repo.notifications, 1)

	err = service.DeleteNotification(context.Background(), seeded.ID.String(), owner.String())
	require.NoError(t, err)
	assert.Empty(t, repo.notifications)
}
