package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/deskboard/internal/domain"
	apperrors "github.com/spec-kit/deskboard/pkg/util"
)

const principalKey = "auth_principal"

// Middleware validates bearer tokens and places the session user in the
// request context. Stateless: the token carries the whole identity.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	user, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, user)
	return c.Next()
}

// UserFromContext retrieves the session user.
func UserFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// RequireRole ensures the session user has the given role.
func RequireRole(role domain.ActorRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := UserFromContext(c)
		if !ok || user.Role != role {
			return apperrors.NewForbidden(string(role) + " role required")
		}
		return c.Next()
	}
}
