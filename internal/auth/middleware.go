package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/goldenpays/consultancy-api/internal/domain"
	apperrors "github.com/goldenpays/consultancy-api/pkg/util"
)

const principalKey = "auth_principal"

// Verifier checks a raw bearer token.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// AuthMiddleware validates bearer tokens before any guarded handler runs.
type AuthMiddleware struct {
	verifier Verifier
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(verifier Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	claims, err := m.verifier.Verify(c.UserContext(), BearerToken(c.Get(fiber.HeaderAuthorization)))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingCredential):
			return apperrors.NewAccessDenied("No token provided")
		case errors.Is(err, domain.ErrInvalidOrExpiredCredential):
			return apperrors.NewInvalidToken()
		default:
			return apperrors.NewInternalError(err)
		}
	}

	c.Locals(principalKey, claims)
	return c.Next()
}

// BearerToken extracts the token from an Authorization header value. Anything
// other than "Bearer <token>" yields an empty string.
func BearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// ClaimsFromContext retrieves the verified claims.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	claims, ok := val.(*Claims)
	return claims, ok
}
