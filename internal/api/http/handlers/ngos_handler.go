package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/community-engage/internal/api/dto"
	"github.com/spec-kit/community-engage/internal/feed"
	"github.com/spec-kit/community-engage/internal/service"
	"github.com/spec-kit/community-engage/pkg/errorutil"
)

// NGOHandler serves the NGO feed and verification.
type NGOHandler struct {
	sessions     *service.SessionService
	verification *service.VerificationService
}

// NewNGOHandler constructs handler.
func NewNGOHandler(sessions *service.SessionService, verification *service.VerificationService) *NGOHandler {
	return &NGOHandler{sessions: sessions, verification: verification}
}

// List GET /ngos. Query params: search, category, verified, has_capacity,
// sort_by, desc.
func (h *NGOHandler) List(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}

	query := feed.NGOQuery{
		Search:       c.Query("search"),
		Category:     c.Query("category"),
		VerifiedOnly: c.QueryBool("verified"),
		HasCapacity:  c.QueryBool("has_capacity"),
		SortBy:       feed.NGOSortKey(c.Query("sort_by", string(feed.NGOSortByName))),
		Descending:   c.QueryBool("desc"),
	}

	ngos := feed.FilterNGOs(store.State().NGOs, query)
	summaries := make([]dto.NGOSummary, 0, len(ngos))
	for _, ngo := range ngos {
		summaries = append(summaries, ngoSummary(ngo))
	}
	return c.JSON(fiber.Map{"data": summaries, "total": len(summaries)})
}

// Get GET /ngos/:id.
func (h *NGOHandler) Get(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	ngo, ok := store.State().FindNGO(c.Params("id"))
	if !ok {
		return errorutil.NewNotFound("ngo", fiber.Map{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": ngoSummary(ngo)})
}

// Verify POST /ngos/:id/verify.
func (h *NGOHandler) Verify(c *fiber.Ctx) error {
	store, _, err := sessionStore(c, h.sessions)
	if err != nil {
		return err
	}
	var req dto.VerifyNGORequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	ngo, err := h.verification.VerifyNGO(c.UserContext(), store, c.Params("id"), req.DarpanID)
	if err != nil {
		return errorutil.MapError(err)
	}
	return c.JSON(fiber.Map{"data": ngoSummary(ngo)})
}
