package domain

import "time"

// TaskStatus enumerates stored task lifecycle states.
type TaskStatus string

const (
	TaskStatusActive    TaskStatus = "active"
	TaskStatusCompleted TaskStatus = "completed"
)

// TaskTier is the urgency tier derived from deadline proximity.
type TaskTier string

const (
	TierActive    TaskTier = "active"
	TierAttention TaskTier = "attention"
	TierOverdue   TaskTier = "overdue"
	TierCompleted TaskTier = "completed"
)

// Task is the stored shape of a tracked task. CompletedAt is set exactly
// when Status is completed.
type Task struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Deadline             time.Time  `json:"deadline"`
	WarningBoundaryHours int        `json:"warningBoundaryHours"`
	Status               TaskStatus `json:"status"`
	CreatedAt            time.Time  `json:"createdAt"`
	CompletedAt          *time.Time `json:"completedAt,omitempty"`
}

// TaskWithPriority is the read-side projection of a task. It is recomputed
// from the clock on every read and never persisted.
type TaskWithPriority struct {
	Task
	Priority        TaskTier `json:"priority"`
	RemainingMs     int64    `json:"remainingMs"`
	ProgressPercent float64  `json:"progressPercent"`
	BoundaryMessage string   `json:"boundaryMessage,omitempty"`
}
