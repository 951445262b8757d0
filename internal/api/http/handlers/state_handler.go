package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/community-engage/internal/api/dto"
	"github.com/spec-kit/community-engage/internal/domain"
	"github.com/spec-kit/community-engage/internal/service"
	"github.com/spec-kit/community-engage/internal/state"
	"github.com/spec-kit/community-engage/internal/trust"
	"github.com/spec-kit/community-engage/pkg/errorutil"
)

// StateHandler exposes the session state and its track/UI/trust transitions.
type StateHandler struct {
	sessions   *service.SessionService
	engagement *service.EngagementService
}

// NewStateHandler constructs handler.
func NewStateHandler(sessions *service.SessionService, engagement *service.EngagementService) *StateHandler {
	return &StateHandler{sessions: sessions, engagement: engagement}
}

// GetState GET /state.
func (h *StateHandler) GetState(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	snapshot := store.State()

	notifications := make([]dto.NotificationSummary, 0, len(snapshot.UI.Notifications))
	for _, notification := range snapshot.UI.Notifications {
		notifications = append(notifications, notificationSummary(notification))
	}

	return c.JSON(fiber.Map{"data": dto.StateSummary{
		User:          userSummary(snapshot.User),
		CurrentTrack:  string(snapshot.CurrentTrack),
		ViewMode:      string(snapshot.UI.ViewMode),
		ActiveModal:   snapshot.UI.ActiveModal,
		Loading:       snapshot.UI.Loading,
		NGOCount:      len(snapshot.NGOs),
		EventCount:    len(snapshot.Events),
		Notifications: notifications,
	}})
}

// SwitchTrack POST /state/track.
func (h *StateHandler) SwitchTrack(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	var req dto.SwitchTrackRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	track := domain.Track(req.Track)
	if track != domain.TrackVolunteering && track != domain.TrackSocial {
		return errorutil.NewValidationError("unknown track", fiber.Map{"track": req.Track})
	}

	next := store.Dispatch(state.SwitchTrack{Track: track})
	return c.JSON(fiber.Map{"data": fiber.Map{
		"current_track": next.CurrentTrack,
		"theme":         next.UI.Theme,
	}})
}

// AwardPoints POST /state/points.
func (h *StateHandler) AwardPoints(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	var req dto.AwardPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	user, err := h.engagement.AwardPoints(c.UserContext(), store, trust.PointAction(req.Action), req.EventID)
	if err != nil {
		return errorutil.NewValidationError(err.Error(), fiber.Map{"action": req.Action})
	}
	return c.JSON(fiber.Map{"data": userSummary(user)})
}

// VerifyIdentity POST /state/verify-identity.
func (h *StateHandler) VerifyIdentity(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	user, err := h.engagement.VerifyIdentity(c.UserContext(), store)
	if err != nil {
		return errorutil.MapError(err)
	}
	return c.JSON(fiber.Map{"data": userSummary(user)})
}

// SetViewMode POST /state/view-mode.
func (h *StateHandler) SetViewMode(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	var req dto.SetViewModeRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	next := store.Dispatch(state.SetViewMode{Mode: state.ViewMode(req.Mode)})
	return c.JSON(fiber.Map{"data": fiber.Map{"view_mode": next.UI.ViewMode}})
}

// ShowModal POST /state/modal.
func (h *StateHandler) ShowModal(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	var req dto.ShowModalRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	next := store.Dispatch(state.ShowModal{Modal: req.Modal})
	return c.JSON(fiber.Map{"data": fiber.Map{"active_modal": next.UI.ActiveModal}})
}

// HideModal DELETE /state/modal.
func (h *StateHandler) HideModal(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	store.Dispatch(state.HideModal{})
	return c.JSON(fiber.Map{"data": fiber.Map{"active_modal": ""}})
}
