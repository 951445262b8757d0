package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/community-engage/internal/api/dto"
	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/service"
	"github.com/spec-kit/community-engage/pkg/errorutil"
)

// ChatHandler serves chat threads scoped to an NGO or event context.
type ChatHandler struct {
	sessions *service.SessionService
	chat     *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(sessions *service.SessionService, chat *service.ChatService) *ChatHandler {
	return &ChatHandler{sessions: sessions, chat: chat}
}

// List GET /chats.
func (h *ChatHandler) List(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	threads := store.State().ChatThreads
	summaries := make([]dto.ThreadSummary, 0, len(threads))
	for _, thread := range threads {
		summaries = append(summaries, threadSummary(thread))
	}
	return c.JSON(fiber.Map{"data": summaries, "total": len(summaries)})
}

// Open POST /chats.
func (h *ChatHandler) Open(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	var req dto.OpenThreadRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	kind := domain.ChatContextKind(req.ContextKind)
	if kind != domain.ChatContextNGO && kind != domain.ChatContextEvent {
		return errorutil.NewValidationError("unknown context kind", fiber.Map{"context_kind": req.ContextKind})
	}

	thread, err := h.chat.OpenThread(c.UserContext(), store, kind, req.ContextID, req.Participants)
	if err != nil {
		return errorutil.MapError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": threadSummary(thread)})
}

// Get GET /chats/:id.
func (h *ChatHandler) Get(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	thread, ok := store.State().FindThread(c.Params("id"))
	if !ok {
		return errorutil.NewNotFound("chat thread", fiber.Map{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": threadSummary(thread)})
}

// SendMessage POST /chats/:id/messages.
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	message, err := h.chat.SendMessage(c.UserContext(), store, c.Params("id"), req.Body)
	if err != nil {
		return errorutil.MapError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.MessageSummary{
		ID:       message.ID,
		SenderID: message.SenderID,
		Body:     message.Body,
		IsRead:   message.IsRead,
		SentAt:   message.SentAt,
	}})
}

// MarkRead POST /chats/:id/read.
func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	var req dto.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if err := h.chat.MarkRead(store, c.Params("id"), req.MessageIDs); err != nil {
		return errorutil.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"thread_id": c.Params("id")}})
}
