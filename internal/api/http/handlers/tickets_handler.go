package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/deskboard/internal/api/dto"
	"github.com/spec-kit/deskboard/internal/auth"
	"github.com/spec-kit/deskboard/internal/domain"
	"github.com/spec-kit/deskboard/internal/service"
	apperrors "github.com/spec-kit/deskboard/pkg/util"
)

// TicketsHandler manages support ticket endpoints for both customers and
// support agents. Customers only ever see their own tickets; agents see
// the whole collection, optionally narrowed to one team.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidationError("subject, description required", nil)
	}

	name := req.CustomerName
	if name == "" {
		name = user.Name
	}
	email := req.CustomerEmail
	if email == "" {
		email = user.Email
	}
	ticket := h.service.AddTicket(c.UserContext(), service.TicketCreateInput{
		CustomerID:    user.ID,
		CustomerName:  name,
		CustomerEmail: email,
		Subject:       req.Subject,
		Description:   req.Description,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticket})
}

// ListTickets GET /tickets. Customers get their own tickets; support
// agents get everything, or one team's queue via ?team=.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	if user.Role == domain.RoleCustomer {
		return c.JSON(fiber.Map{"data": h.service.ListByCustomer(user.ID)})
	}
	if team := c.Query("team"); team != "" {
		return c.JSON(fiber.Map{"data": h.service.ListByTeam(domain.Team(team))})
	}
	return c.JSON(fiber.Map{"data": h.service.ListAll()})
}

// GetTicket GET /tickets/:id.
func (h *TicketsHandler) GetTicket(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	ticket, found := h.service.GetTicketByID(c.Params("id"))
	if !found {
		return apperrors.NewNotFound("ticket", nil)
	}
	if user.Role == domain.RoleCustomer && ticket.CustomerID != user.ID {
		return apperrors.NewForbidden("ticket belongs to another customer")
	}
	return c.JSON(fiber.Map{"data": ticket})
}

// UpdateStatus PATCH /tickets/:id/status. Support only.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status := domain.TicketStatus(req.Status)
	if !status.IsValid() {
		return apperrors.NewValidationError("unknown status", map[string]any{"status": req.Status})
	}
	ticketID := c.Params("id")
	if _, found := h.service.GetTicketByID(ticketID); !found {
		return apperrors.NewNotFound("ticket", nil)
	}

	h.service.UpdateTicketStatus(c.UserContext(), ticketID, status)
	ticket, _ := h.service.GetTicketByID(ticketID)
	return c.JSON(fiber.Map{"data": ticket})
}

// AddResponse POST /tickets/:id/responses.
func (h *TicketsHandler) AddResponse(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("user required")
	}
	var req dto.CreateResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Message) == "" {
		return apperrors.NewValidationError("message required", nil)
	}
	ticketID := c.Params("id")
	ticket, found := h.service.GetTicketByID(ticketID)
	if !found {
		return apperrors.NewNotFound("ticket", nil)
	}
	if user.Role == domain.RoleCustomer && ticket.CustomerID != user.ID {
		return apperrors.NewForbidden("ticket belongs to another customer")
	}

	h.service.AddResponse(c.UserContext(), ticketID, req.Message, user.Role)
	updated, _ := h.service.GetTicketByID(ticketID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": updated})
}

// Stats GET /tickets/stats. Support only.
func (h *TicketsHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.Stats()})
}
