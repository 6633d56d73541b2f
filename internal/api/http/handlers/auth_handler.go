package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/goldenpays/consultancy-api/internal/api/dto"
	"github.com/goldenpays/consultancy-api/internal/auth"
	"github.com/goldenpays/consultancy-api/internal/service"
	apperrors "github.com/goldenpays/consultancy-api/pkg/util"
)

// AuthHandler exposes login, token verification and logout.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	cred, err := h.service.Authenticate(c.UserContext(), service.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewLoginResponse(cred))
}

// Verify GET /api/auth/verify. Runs behind the auth middleware.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAccessDenied("No token provided")
	}
	return c.JSON(dto.VerifyResponse{Valid: true, User: dto.NewClaimsView(claims)})
}

// Logout POST /api/auth/logout revokes the presented token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAccessDenied("No token provided")
	}
	if err := h.service.Logout(c.UserContext(), claims); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: "Logged out successfully"})
}
