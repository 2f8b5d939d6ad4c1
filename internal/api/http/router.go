package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/deskboard/internal/api/http/handlers"
	"github.com/spec-kit/deskboard/internal/auth"
	"github.com/spec-kit/deskboard/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Session        *handlers.SessionHandler
	Tasks          *handlers.TasksHandler
	Tickets        *handlers.TicketsHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/session", cfg.Session.Create)

	tasks := app.Group("/tasks", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleSupport))
	tasks.Get("/", cfg.Tasks.ListTasks)
	tasks.Post("/", cfg.Tasks.CreateTask)
	tasks.Post("/:id/complete", cfg.Tasks.CompleteTask)
	tasks.Delete("/:id", cfg.Tasks.DeleteTask)

	tickets := app.Group("/tickets", cfg.AuthMiddleware.Handle)
	tickets.Get("/stats", auth.RequireRole(domain.RoleSupport), cfg.Tickets.Stats)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Patch("/:id/status", auth.RequireRole(domain.RoleSupport), cfg.Tickets.UpdateStatus)
	tickets.Post("/:id/responses", cfg.Tickets.AddResponse)
}
