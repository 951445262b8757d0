package handlers

import (
	"errors"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/community-engage/internal/api/dto"
	"github.com/spec-kit/community-engage/internal/feed"
	"github.com/spec-kit/community-engage/internal/rsvp"
	"github.com/spec-kit/community-engage/internal/service"
	"github.com/spec-kit/community-engage/internal/state"
	"github.com/spec-kit/community-engage/pkg/errorutil"
)

// EventHandler serves the event feed and the RSVP lifecycle. RSVP controllers
// are kept per user so in-flight submits survive across requests; each entry
// remembers the store it was built over so a rebuilt session gets a fresh
// controller instead of one bound to a discarded store.
type EventHandler struct {
	sessions *service.SessionService
	service  rsvp.Service
	logger   *zap.Logger

	mu          sync.Mutex
	controllers map[string]controllerEntry
}

type controllerEntry struct {
	store      *state.Store
	controller *rsvp.Controller
}

// NewEventHandler constructs handler.
func NewEventHandler(sessions *service.SessionService, rsvpService rsvp.Service, logger *zap.Logger) *EventHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EventHandler{
		sessions:    sessions,
		service:     rsvpService,
		logger:      logger,
		controllers: make(map[string]controllerEntry),
	}
}

// List GET /events. Query params: search, category, safe_only, sort_by, desc.
func (h *EventHandler) List(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}

	query := feed.EventQuery{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		SafeOnly:   c.QueryBool("safe_only"),
		SortBy:     feed.EventSortKey(c.Query("sort_by", string(feed.EventSortByDate))),
		Descending: c.QueryBool("desc"),
	}
	if c.QueryBool("upcoming") {
		query.After = time.Now()
	}

	snapshot := store.State()
	events := feed.FilterEvents(snapshot.Events, query)
	userID := ""
	if snapshot.User != nil {
		userID = snapshot.User.ID
	}
	summaries := make([]dto.EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, eventSummary(event, event.HasRSVP(userID)))
	}
	return c.JSON(fiber.Map{"data": summaries, "total": len(summaries)})
}

// Get GET /events/:id.
func (h *EventHandler) Get(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	snapshot := store.State()
	event, ok := snapshot.FindEvent(c.Params("id"))
	if !ok {
		return errorutil.NewNotFound("event", fiber.Map{"id": c.Params("id")})
	}
	userID := ""
	if snapshot.User != nil {
		userID = snapshot.User.ID
	}
	return c.JSON(fiber.Map{"data": eventSummary(event, event.HasRSVP(userID))})
}

// RSVP POST /events/:id/rsvp.
func (h *EventHandler) RSVP(c *fiber.Ctx) error {
	store, user, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	controller := h.controllerFor(user.ID, store)

	record, err := controller.Create(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapRSVPError(err)
	}
	if err := h.sessions.Persist(c.UserContext(), user.ID); err != nil {
		h.logger.Warn("session persist failed", zap.String("user_id", user.ID), zap.Error(err))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.RSVPResponse{
		ID:      record.ID,
		EventID: record.EventID,
		Status:  string(record.Status),
	}})
}

// CancelRSVP DELETE /events/:id/rsvp.
func (h *EventHandler) CancelRSVP(c *fiber.Ctx) error {
	store, user, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	controller := h.controllerFor(user.ID, store)

	if err := controller.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return mapRSVPError(err)
	}
	if err := h.sessions.Persist(c.UserContext(), user.ID); err != nil {
		h.logger.Warn("session persist failed", zap.String("user_id", user.ID), zap.Error(err))
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"event_id": c.Params("id"), "status": "CANCELLED"}})
}

// MyRSVPs GET /events/rsvps.
func (h *EventHandler) MyRSVPs(c *fiber.Ctx) error {
	store, user, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	controller := h.controllerFor(user.ID, store)
	if err := controller.Refresh(c.UserContext()); err != nil {
		return errorutil.MapError(err)
	}

	records := store.State().RSVPs
	responses := make([]dto.RSVPResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.RSVPResponse{
			ID:      record.ID,
			EventID: record.EventID,
			Status:  string(record.Status),
		})
	}
	return c.JSON(fiber.Map{"data": responses, "total": len(responses)})
}

func (h *EventHandler) controllerFor(userID string, store *state.Store) *rsvp.Controller {
	h.mu.Lock()
	defer h.mu.Unlock()
	if entry, ok := h.controllers[userID]; ok && entry.store == store {
		return entry.controller
	}
	// A different store means the session was dropped and rebuilt; the old
	// controller would dispatch into a store no longer read by anyone.
	controller := rsvp.NewController(store, h.service, h.logger)
	h.controllers[userID] = controllerEntry{store: store, controller: controller}
	return controller
}

func mapRSVPError(err error) error {
	switch {
	case errors.Is(err, rsvp.ErrNotAuthenticated):
		return errorutil.NewUnauthorized(err.Error())
	case errors.Is(err, rsvp.ErrNotEligible):
		return errorutil.NewForbidden(err.Error())
	case errors.Is(err, rsvp.ErrAlreadyConfirmed), errors.Is(err, rsvp.ErrInFlight):
		return errorutil.NewConflict(err.Error(), nil)
	case errors.Is(err, rsvp.ErrNoConfirmedRSVP):
		return errorutil.NewNotFound("rsvp", nil)
	default:
		return errorutil.MapError(err)
	}
}
