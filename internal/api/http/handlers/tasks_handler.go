package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/deskboard/internal/api/dto"
	"github.com/spec-kit/deskboard/internal/service"
	apperrors "github.com/spec-kit/deskboard/pkg/util"
)

// TasksHandler manages deadline-tracked task endpoints.
type TasksHandler struct {
	service *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{service: taskService}
}

// ListTasks GET /tasks. Every task is returned with its computed
// priority annotation so clients never re-derive tiers themselves.
func (h *TasksHandler) ListTasks(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.service.ListWithPriority()})
}

// CreateTask POST /tasks.
func (h *TasksHandler) CreateTask(c *fiber.Ctx) error {
	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title required", nil)
	}
	if req.Deadline == nil || req.Deadline.IsZero() {
		return apperrors.NewValidationError("deadline required", nil)
	}
	warning := req.WarningBoundaryHours
	if warning < 0 {
		return apperrors.NewValidationError("warningBoundaryHours must not be negative", nil)
	}
	if warning == 0 {
		warning = 24
	}

	task := h.service.AddTask(c.UserContext(), service.TaskCreateInput{
		Title:                req.Title,
		Description:          req.Description,
		Deadline:             *req.Deadline,
		WarningBoundaryHours: warning,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": task})
}

// CompleteTask POST /tasks/:id/complete. Unknown ids are ignored.
func (h *TasksHandler) CompleteTask(c *fiber.Ctx) error {
	h.service.CompleteTask(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteTask DELETE /tasks/:id. Unknown ids are ignored.
func (h *TasksHandler) DeleteTask(c *fiber.Ctx) error {
	h.service.DeleteTask(c.UserContext(), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
