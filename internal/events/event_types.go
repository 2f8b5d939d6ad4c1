package events

import (
	"time"

	"github.com/spec-kit/deskboard/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTaskCreated         EventType = "task_created"
	EventTaskCompleted       EventType = "task_completed"
	EventTaskDeleted         EventType = "task_deleted"
	EventTaskDueSoon         EventType = "task_due_soon"
	EventTaskOverdue         EventType = "task_overdue"
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketResponseAdded EventType = "ticket_response_added"
)

// Event represents a domain event emitted by the stores. SubjectID is the
// task or ticket the event concerns.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TaskCreatedPayload payload.
type TaskCreatedPayload struct {
	Title    string    `json:"title"`
	Deadline time.Time `json:"deadline"`
}

// TaskCompletedPayload payload.
type TaskCompletedPayload struct {
	Title       string    `json:"title"`
	CompletedAt time.Time `json:"completed_at"`
}

// TaskBoundaryPayload accompanies due-soon and overdue notifications.
type TaskBoundaryPayload struct {
	Title       string          `json:"title"`
	Tier        domain.TaskTier `json:"tier"`
	Message     string          `json:"message"`
	RemainingMs int64           `json:"remaining_ms"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Subject  string                `json:"subject"`
	Category domain.TicketCategory `json:"category"`
	Urgency  domain.TicketUrgency  `json:"urgency"`
	Team     domain.Team           `json:"team"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
}

// TicketResponseAddedPayload payload.
type TicketResponseAddedPayload struct {
	ResponseID     string           `json:"response_id"`
	AuthorRole     domain.ActorRole `json:"author_role"`
	MessagePreview string           `json:"message_preview"`
}
