package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/deskboard/internal/classify"
	"github.com/spec-kit/deskboard/internal/domain"
	"github.com/spec-kit/deskboard/internal/events"
	"github.com/spec-kit/deskboard/internal/persistence"
	"github.com/spec-kit/deskboard/internal/seed"
)

// TicketService owns the ticket collection. Classification and routing
// happen exactly once, at creation; afterwards tickets change only through
// status updates and appended responses. Tickets are never deleted.
type TicketService struct {
	mu         sync.Mutex
	tickets    []domain.Ticket
	rng        *rand.Rand
	snapshots  persistence.SnapshotStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Snapshots  persistence.SnapshotStore
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// Now is the injected clock; defaults to time.Now.
	Now func() time.Time
	// Rand drives ticket id generation and seed data; defaults to a
	// time-seeded source.
	Rand *rand.Rand
	// SeedTicketCount sizes the fallback collection; defaults to 50.
	SeedTicketCount int
}

// TicketCreateInput describes ticket creation payload. The boundary
// validates required fields; the store assumes they are present.
type TicketCreateInput struct {
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	Subject       string
	Description   string
}

// TicketStats aggregates read-side counters for the support dashboard.
type TicketStats struct {
	Total       int                           `json:"total"`
	ByStatus    map[domain.TicketStatus]int   `json:"byStatus"`
	ByCategory  map[domain.TicketCategory]int `json:"byCategory"`
	ByUrgency   map[domain.TicketUrgency]int  `json:"byUrgency"`
	NewToday    int                           `json:"newToday"`
	StaleOpen   int                           `json:"staleOpen"`
	Open        int                           `json:"open"`
	Resolved    int                           `json:"resolved"`
	HighUrgency int                           `json:"highUrgency"`
}

// NewTicketService loads the persisted collection, falling back to
// generated seed tickets when the snapshot is absent or unparsable.
func NewTicketService(ctx context.Context, deps TicketDependencies) *TicketService {
	nowFn := deps.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &TicketService{
		rng:        rng,
		snapshots:  deps.Snapshots,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        nowFn,
	}
	s.tickets = s.loadOrSeed(ctx, deps.SeedTicketCount)
	return s
}

// AddTicket classifies the submission, routes it to its owning team and
// stores it at the front of the collection. The created ticket is returned
// so the caller can show the detected classification immediately.
func (s *TicketService) AddTicket(ctx context.Context, input TicketCreateInput) domain.Ticket {
	text := input.Subject + " " + input.Description
	category := classify.DetectCategory(text)
	urgency := classify.DetectUrgency(text)
	team := classify.RouteCategory(category)
	now := s.now()

	s.mu.Lock()
	id := seed.NewTicketID(s.rng)
	ticket := domain.Ticket{
		ID:            id,
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		Subject:       input.Subject,
		Description:   input.Description,
		Category:      category,
		Status:        domain.TicketStatusNew,
		Urgency:       urgency,
		AssignedTeam:  team,
		CreatedAt:     now,
		UpdatedAt:     now,
		Responses:     []domain.TicketResponse{},
		Timeline: []domain.TimelineEvent{
			{
				ID:        fmt.Sprintf("tl-%s-1", id),
				Event:     "Ticket Created",
				Timestamp: now,
				Actor:     input.CustomerName,
			},
			{
				ID:        fmt.Sprintf("tl-%s-2", id),
				Event:     "Assigned to " + string(team),
				Timestamp: now,
				Actor:     "System",
			},
		},
	}
	s.tickets = append([]domain.Ticket{ticket}, s.tickets...)
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(ctx, events.Event{
		Type:      events.EventTicketCreated,
		SubjectID: ticket.ID,
		Actor:     input.CustomerName,
		Payload: events.TicketCreatedPayload{
			Subject:  ticket.Subject,
			Category: category,
			Urgency:  urgency,
			Team:     team,
		},
	})
	return cloneTicket(ticket)
}

// UpdateTicketStatus sets the status, bumps updatedAt and appends one
// timeline entry. Any status may follow any other; unknown ids are a
// silent no-op.
func (s *TicketService) UpdateTicketStatus(ctx context.Context, ticketID string, status domain.TicketStatus) {
	now := s.now()

	s.mu.Lock()
	var changed *domain.Ticket
	var oldStatus domain.TicketStatus
	for i := range s.tickets {
		if s.tickets[i].ID != ticketID {
			continue
		}
		ticket := cloneTicket(s.tickets[i])
		oldStatus = ticket.Status
		ticket.Status = status
		ticket.UpdatedAt = now
		ticket.Timeline = append(ticket.Timeline, domain.TimelineEvent{
			ID:        fmt.Sprintf("tl-%s-%d", ticketID, len(ticket.Timeline)+1),
			Event:     fmt.Sprintf("Status changed to %s", status),
			Timestamp: now,
			Actor:     "Support Agent",
		})
		s.tickets[i] = ticket
		changed = &ticket
		break
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	if changed == nil {
		return
	}
	s.persist(ctx, snapshot)
	s.publish(ctx, events.Event{
		Type:      events.EventTicketStatusChanged,
		SubjectID: ticketID,
		Actor:     "Support Agent",
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
}

// AddResponse appends a response and its timeline entry, bumping updatedAt.
// The author name resolves to "Support Agent" for the support role, else
// the ticket's customer name. Unknown ids are a silent no-op.
func (s *TicketService) AddResponse(ctx context.Context, ticketID, message string, authorRole domain.ActorRole) {
	now := s.now()

	s.mu.Lock()
	var responseID string
	for i := range s.tickets {
		if s.tickets[i].ID != ticketID {
			continue
		}
		ticket := cloneTicket(s.tickets[i])

		author := ticket.CustomerName
		actorLabel := "Customer"
		if authorRole == domain.RoleSupport {
			author = "Support Agent"
			actorLabel = "Support Agent"
		}

		responseID = fmt.Sprintf("resp-%s-%d", ticketID, len(ticket.Responses)+1)
		ticket.Responses = append(ticket.Responses, domain.TicketResponse{
			ID:         responseID,
			Author:     author,
			AuthorRole: authorRole,
			Message:    message,
			CreatedAt:  now,
		})
		ticket.Timeline = append(ticket.Timeline, domain.TimelineEvent{
			ID:        fmt.Sprintf("tl-%s-%d", ticketID, len(ticket.Timeline)+1),
			Event:     actorLabel + " added a response",
			Timestamp: now,
			Actor:     author,
		})
		ticket.UpdatedAt = now
		s.tickets[i] = ticket
		break
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	if responseID == "" {
		return
	}
	s.persist(ctx, snapshot)
	s.publish(ctx, events.Event{
		Type:      events.EventTicketResponseAdded,
		SubjectID: ticketID,
		Actor:     string(authorRole),
		Payload: events.TicketResponseAddedPayload{
			ResponseID:     responseID,
			AuthorRole:     authorRole,
			MessagePreview: preview(message, 120),
		},
	})
}

// GetTicketByID looks up a ticket; the second return reports existence.
func (s *TicketService) GetTicketByID(id string) (domain.Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return cloneTicket(s.tickets[i]), true
		}
	}
	return domain.Ticket{}, false
}

// ListAll returns a copy of the whole collection, newest first.
func (s *TicketService) ListAll() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// ListByCustomer filters the collection by customer id.
func (s *TicketService) ListByCustomer(customerID string) []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Ticket
	for i := range s.tickets {
		if s.tickets[i].CustomerID == customerID {
			result = append(result, cloneTicket(s.tickets[i]))
		}
	}
	return result
}

// ListByTeam filters the collection by assigned team.
func (s *TicketService) ListByTeam(team domain.Team) []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []domain.Ticket
	for i := range s.tickets {
		if s.tickets[i].AssignedTeam == team {
			result = append(result, cloneTicket(s.tickets[i]))
		}
	}
	return result
}

// Stats derives dashboard counters from the current collection.
func (s *TicketService) Stats() TicketStats {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	twoDaysAgo := midnight.Add(-48 * time.Hour)

	stats := TicketStats{
		ByStatus:   make(map[domain.TicketStatus]int),
		ByCategory: make(map[domain.TicketCategory]int),
		ByUrgency:  make(map[domain.TicketUrgency]int),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stats.Total = len(s.tickets)
	for i := range s.tickets {
		ticket := &s.tickets[i]
		stats.ByStatus[ticket.Status]++
		stats.ByCategory[ticket.Category]++
		stats.ByUrgency[ticket.Urgency]++

		open := ticket.Status == domain.TicketStatusNew ||
			ticket.Status == domain.TicketStatusInProgress ||
			ticket.Status == domain.TicketStatusPending
		if open {
			stats.Open++
			if ticket.CreatedAt.Before(twoDaysAgo) {
				stats.StaleOpen++
			}
		} else {
			stats.Resolved++
		}
		if !ticket.CreatedAt.Before(midnight) {
			stats.NewToday++
		}
		if ticket.Urgency == domain.UrgencyHigh {
			stats.HighUrgency++
		}
	}
	return stats
}

func (s *TicketService) loadOrSeed(ctx context.Context, count int) []domain.Ticket {
	if data, err := s.snapshots.Load(ctx, persistence.TicketSnapshotKey); err == nil {
		var tickets []domain.Ticket
		if jsonErr := json.Unmarshal(data, &tickets); jsonErr == nil {
			return tickets
		}
		s.logger.Warn("discarding malformed ticket snapshot")
	} else if !errors.Is(err, persistence.ErrNoSnapshot) {
		s.logger.Warn("loading ticket snapshot", zap.Error(err))
	}

	tickets := seed.Tickets(s.rng, s.now(), count)
	s.persist(ctx, tickets)
	return tickets
}

func (s *TicketService) copyLocked() []domain.Ticket {
	result := make([]domain.Ticket, 0, len(s.tickets))
	for i := range s.tickets {
		result = append(result, cloneTicket(s.tickets[i]))
	}
	return result
}

func (s *TicketService) persist(ctx context.Context, tickets []domain.Ticket) {
	data, err := json.Marshal(tickets)
	if err != nil {
		s.logger.Warn("encoding ticket snapshot", zap.Error(err))
		return
	}
	if err := s.snapshots.Save(ctx, persistence.TicketSnapshotKey, data); err != nil {
		s.logger.Warn("persisting ticket snapshot", zap.Error(err))
	}
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// cloneTicket copies a ticket with fresh response/timeline slices so stored
// state is never aliased by callers or by in-place mutation.
func cloneTicket(ticket domain.Ticket) domain.Ticket {
	ticket.Responses = append([]domain.TicketResponse{}, ticket.Responses...)
	ticket.Timeline = append([]domain.TimelineEvent{}, ticket.Timeline...)
	return ticket
}

func preview(message string, max int) string {
	message = strings.TrimSpace(message)
	if len(message) <= max {
		return message
	}
	if max <= 3 {
		return message[:max]
	}
	return message[:max-3] + "..."
}
