package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/community-engage/internal/api/dto"
	"github.com/spec-kit/community-engage/internal/auth"
	"github.com/spec-kit/community-engage/internal/service"
	"github.com/spec-kit/community-engage/pkg/errorutil"
)

// AuthHandler manages registration, login and logout.
type AuthHandler struct {
	authService *service.AuthService
	sessions    *service.SessionService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Register POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return errorutil.NewValidationError("name, email, password required", nil)
	}

	user, token, exp, err := h.authService.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return errorutil.NewConflict(err.Error(), nil)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.AuthResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      *userSummary(user),
	}})
}

// Login POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return errorutil.NewValidationError("invalid payload", nil)
	}

	user, token, exp, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return errorutil.NewUnauthorized("invalid credentials")
	}

	// Warm the session store so the first state read is hydrated already.
	if _, err := h.sessions.StoreFor(c.UserContext(), user); err != nil {
		return errorutil.MapError(err)
	}

	return c.JSON(fiber.Map{"data": dto.AuthResponse{
		Token:     token,
		ExpiresAt: exp,
		User:      *userSummary(user),
	}})
}

// Logout POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return errorutil.NewUnauthorized("user required")
	}
	h.sessions.Drop(c.UserContext(), principal.User.ID)
	return c.JSON(fiber.Map{"data": fiber.Map{"logged_out": true}})
}
