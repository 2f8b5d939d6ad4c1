package seed

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/deskboard/internal/domain"
)

// NewTaskID returns a fresh opaque task identifier.
func NewTaskID() string {
	return "task-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Tasks returns the fixed set of example tasks used when no snapshot exists.
// Deadlines are anchored to the given instant: five upcoming, two already
// past, one completed.
func Tasks(now time.Time) []domain.Task {
	completedAt := now.Add(-24 * time.Hour)
	return []domain.Task{
		{
			ID:                   NewTaskID(),
			Title:                "Prepare quarterly report",
			Description:          "Compile data from all departments and create the Q4 financial report for stakeholders.",
			Deadline:             now.Add(5 * 24 * time.Hour),
			WarningBoundaryHours: 48,
			Status:               domain.TaskStatusActive,
			CreatedAt:            now.Add(-10 * 24 * time.Hour),
		},
		{
			ID:                   NewTaskID(),
			Title:                "Review client proposal",
			Description:          "Review and provide feedback on the new client project proposal before the meeting.",
			Deadline:             now.Add(16 * time.Hour),
			WarningBoundaryHours: 24,
			Status:               domain.TaskStatusActive,
			CreatedAt:            now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:                   NewTaskID(),
			Title:                "Fix authentication bug",
			Description:          "The login page throws a 500 error on mobile devices. Needs immediate attention.",
			Deadline:             now.Add(-3 * time.Hour),
			WarningBoundaryHours: 12,
			Status:               domain.TaskStatusActive,
			CreatedAt:            now.Add(-2 * 24 * time.Hour),
		},
		{
			ID:                   NewTaskID(),
			Title:                "Update design system",
			Description:          "Migrate all components to the new brand color palette and typography.",
			Deadline:             now.Add(7 * 24 * time.Hour),
			WarningBoundaryHours: 72,
			Status:               domain.TaskStatusActive,
			CreatedAt:            now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:                   NewTaskID(),
			Title:                "Deploy staging environment",
			Description:          "Set up the CI/CD pipeline for the staging branch and verify deployment.",
			Deadline:             now.Add(-24 * time.Hour),
			WarningBoundaryHours: 24,
			Status:               domain.TaskStatusActive,
			CreatedAt:            now.Add(-4 * 24 * time.Hour),
		},
		{
			ID:                   NewTaskID(),
			Title:                "Write API documentation",
			Description:          "Document all REST endpoints with request/response examples for the developer portal.",
			Deadline:             now.Add(3 * 24 * time.Hour),
			WarningBoundaryHours: 48,
			Status:               domain.TaskStatusActive,
			CreatedAt:            now.Add(-7 * 24 * time.Hour),
		},
		{
			ID:                   NewTaskID(),
			Title:                "Set up monitoring alerts",
			Description:          "Configure alerts for server health, error rates, and response times.",
			Deadline:             now.Add(14 * 24 * time.Hour),
			WarningBoundaryHours: 72,
			Status:               domain.TaskStatusActive,
			CreatedAt:            now.Add(-24 * time.Hour),
		},
		{
			ID:                   NewTaskID(),
			Title:                "Onboard new team member",
			Description:          "Prepare environment access, schedule intro meetings, and share documentation.",
			Deadline:             now.Add(-5 * time.Hour),
			WarningBoundaryHours: 48,
			Status:               domain.TaskStatusCompleted,
			CreatedAt:            now.Add(-6 * 24 * time.Hour),
			CompletedAt:          &completedAt,
		},
	}
}
