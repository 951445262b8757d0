package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/community-engage/internal/persistence"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	redis *persistence.Redis
	pg    *persistence.Postgres
}

// NewHealthHandler constructs handler.
func NewHealthHandler(redis *persistence.Redis, pg *persistence.Postgres) *HealthHandler {
	return &HealthHandler{redis: redis, pg: pg}
}

// Live GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready GET /health/ready.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	checks := fiber.Map{}
	status := "ok"

	if h.redis != nil {
		if err := h.redis.Ping(c.UserContext()); err != nil {
			checks["redis"] = err.Error()
			status = "degraded"
		} else {
			checks["redis"] = "ok"
		}
	}
	if h.pg != nil && h.pg.Pool != nil {
		if err := h.pg.Ping(c.UserContext()); err != nil {
			checks["postgres"] = err.Error()
			status = "degraded"
		} else {
			checks["postgres"] = "ok"
		}
	}

	return c.JSON(fiber.Map{"status": status, "checks": checks})
}
