package handlers

import (
	"errors"
	"strconv"

	"plate2share/domain"
	"plate2share/internal/api/presenters"
	"plate2share/pkg/notification"

	"github.com/gofiber/fiber/v2"
)

type (
	NotificationHandler interface {
		GetNotifications(c *fiber.Ctx) error
		MarkAsRead(c *fiber.Ctx) error
		MarkAllAsRead(c *fiber.Ctx) error
		DeleteNotification(c *fiber.Ctx) error
	}

	notificationHandler struct {
		notificationService notification.NotificationService
	}
)

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandler{notificationService: notificationService}
}

func notificationErrorStatus(err error) int {
	if errors.Is(err, domain.ErrNotificationNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func (h *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	recipientID := c.Locals("user_id").(string)

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = notification.DefaultNotificationLimit
	}

	skip, err := strconv.Atoi(c.Query("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}

	query := domain.NotificationQuery{
		Limit: limit,
		Skip:  skip,
	}

	if raw := c.Query("read"); raw != "" {
		read := raw == "true"
		query.Read = &read
	}

	notifications, err := h.notificationService.GetNotifications(c.Context(), recipientID, query)
	if err != nil {
		return presenters.ErrorResponse(c, notificationErrorStatus(err), domain.MessageFailedGetNotifications, err)
	}

	return presenters.SuccessResponse(c, notifications, fiber.StatusOK, domain.MessageSuccessGetNotifications)
}

func (h *notificationHandler) MarkAsRead(c *fiber.Ctx) error {
	recipientID := c.Locals("user_id").(string)

	marked, err := h.notificationService.MarkAsRead(c.Context(), c.Params("id"), recipientID)
	if err != nil {
		return presenters.ErrorResponse(c, notificationErrorStatus(err), domain.MessageFailedMarkNotification, err)
	}

	return presenters.SuccessResponse(c, marked, fiber.StatusOK, domain.MessageSuccessMarkNotification)
}

func (h *notificationHandler) MarkAllAsRead(c *fiber.Ctx) error {
	recipientID := c.Locals("user_id").(string)

	count, err := h.notificationService.MarkAllAsRead(c.Context(), recipientID)
	if err != nil {
		return presenters.ErrorResponse(c, notificationErrorStatus(err), domain.MessageFailedMarkAllNotification, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"marked": count}, fiber.StatusOK, domain.MessageSuccessMarkAllNotification)
}

func (h *notificationHandler) DeleteNotification(c *fiber.Ctx) error {
	recipientID := c.Locals("user_id").(string)

	if err := h.notificationService.DeleteNotification(c.Context(), c.Params("id"), recipientID); err != nil {
		return presenters.ErrorResponse(c, notificationErrorStatus(err), domain.MessageFailedDeleteNotification, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteNotification)
}
