package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/community-engage/internal/api/http/handlers"
	"github.com/spec-kit/community-engage/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	State          *handlers.StateHandler
	NGOs           *handlers.NGOHandler
	Events         *handlers.EventHandler
	Chats          *handlers.ChatHandler
	Notifications  *handlers.NotificationHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	protected := app.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	protected.Post("/auth/logout", cfg.Auth.Logout)

	protected.Get("/state", cfg.State.GetState)
	protected.Post("/state/track", cfg.State.SwitchTrack)
	protected.Post("/state/points", cfg.State.AwardPoints)
	protected.Post("/state/verify-identity", cfg.State.VerifyIdentity)
	protected.Post("/state/view-mode", cfg.State.SetViewMode)
	protected.Post("/state/modal", cfg.State.ShowModal)
	protected.Delete("/state/modal", cfg.State.HideModal)

	protected.Get("/ngos", cfg.NGOs.List)
	protected.Get("/ngos/:id", cfg.NGOs.Get)
	protected.Post("/ngos/:id/verify", cfg.NGOs.Verify)

	protected.Get("/events/rsvps", cfg.Events.MyRSVPs)
	protected.Get("/events", cfg.Events.List)
	protected.Get("/events/:id", cfg.Events.Get)
	protected.Post("/events/:id/rsvp", cfg.Events.RSVP)
	protected.Delete("/events/:id/rsvp", cfg.Events.CancelRSVP)

	protected.Get("/chats", cfg.Chats.List)
	protected.Post("/chats", cfg.Chats.Open)
	protected.Get("/chats/:id", cfg.Chats.Get)
	protected.Post("/chats/:id/messages", cfg.Chats.SendMessage)
	protected.Post("/chats/:id/read", cfg.Chats.MarkRead)

	protected.Get("/notifications", cfg.Notifications.List)
	protected.Post("/notifications/:id/read", cfg.Notifications.MarkRead)
	protected.Delete("/notifications/:id", cfg.Notifications.Remove)
}
