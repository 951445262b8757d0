package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/community-engage/internal/api/dto"
	"github.com/spec-kit/community-engage/internal/service"
	"github.com/spec-kit/community-engage/internal/state"
)

// NotificationHandler serves the session's notification tray.
type NotificationHandler struct {
	sessions *service.SessionService
}

// NewNotificationHandler constructs handler.
func NewNotificationHandler(sessions *service.SessionService) *NotificationHandler {
	return &NotificationHandler{sessions: sessions}
}

// List GET /notifications.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	notifications := store.State().UI.Notifications
	summaries := make([]dto.NotificationSummary, 0, len(notifications))
	for _, notification := range notifications {
		summaries = append(summaries, notificationSummary(notification))
	}
	return c.JSON(fiber.Map{"data": summaries, "total": len(summaries)})
}

// MarkRead POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	store.Dispatch(state.MarkNotificationRead{NotificationID: c.Params("id")})
	return c.JSON(fiber.Map{"data": fiber.Map{"id": c.Params("id")}})
}

// Remove DELETE /notifications/:id.
func (h *NotificationHandler) Remove(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	store.Dispatch(state.RemoveNotification{NotificationID: c.Params("id")})
	return c.SendStatus(fiber.StatusNoContent)
}
