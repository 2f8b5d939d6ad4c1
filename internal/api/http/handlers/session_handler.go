package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/deskboard/internal/api/dto"
	"github.com/spec-kit/deskboard/internal/auth"
	"github.com/spec-kit/deskboard/internal/domain"
	apperrors "github.com/spec-kit/deskboard/pkg/util"
)

// SessionHandler issues demo session tokens. There are no credentials:
// the identity is derived from the email and the chosen role.
type SessionHandler struct {
	tokens *auth.TokenManager
}

// NewSessionHandler constructs handler.
func NewSessionHandler(tokens *auth.TokenManager) *SessionHandler {
	return &SessionHandler{tokens: tokens}
}

// Create POST /session.
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req dto.SessionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	role := domain.ActorRole(req.Role)
	if role != domain.RoleCustomer && role != domain.RoleSupport {
		return apperrors.NewValidationError("role must be customer or support", nil)
	}

	user := auth.DeriveUser(email, role)
	token, _, err := h.tokens.GenerateToken(user)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.SessionResponse{
		Token: token,
		User:  user,
	}})
}
