package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusNew        TicketStatus = "New"
	TicketStatusInProgress TicketStatus = "In Progress"
	TicketStatusPending    TicketStatus = "Pending"
	TicketStatusResolved   TicketStatus = "Resolved"
	TicketStatusClosed     TicketStatus = "Closed"
)

// TicketStatuses lists every status in display order.
var TicketStatuses = []TicketStatus{
	TicketStatusNew,
	TicketStatusInProgress,
	TicketStatusPending,
	TicketStatusResolved,
	TicketStatusClosed,
}

// IsValid reports whether the value is one of the fixed statuses.
func (s TicketStatus) IsValid() bool {
	for _, candidate := range TicketStatuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// TicketCategory is one of the five fixed subject-matter classifications.
type TicketCategory string

const (
	CategoryBilling   TicketCategory = "Billing / Payment"
	CategoryAccount   TicketCategory = "Login / Account"
	CategoryTechnical TicketCategory = "Technical Issue"
	CategoryRefund    TicketCategory = "Refund"
	CategoryGeneral   TicketCategory = "General Query"
)

// TicketCategories lists every category.
var TicketCategories = []TicketCategory{
	CategoryBilling,
	CategoryAccount,
	CategoryTechnical,
	CategoryRefund,
	CategoryGeneral,
}

// TicketUrgency enumerates detected urgency levels.
type TicketUrgency string

const (
	UrgencyHigh   TicketUrgency = "High"
	UrgencyMedium TicketUrgency = "Medium"
	UrgencyLow    TicketUrgency = "Low"
)

// TicketUrgencies lists every urgency level.
var TicketUrgencies = []TicketUrgency{UrgencyHigh, UrgencyMedium, UrgencyLow}

// Team is one of the five fixed support groups.
type Team string

const (
	TeamBilling        Team = "Billing Team"
	TeamTechSupport    Team = "Technical Support Team"
	TeamAccountSupport Team = "Account Support Team"
	TeamFinance        Team = "Finance Team"
	TeamGeneralSupport Team = "General Support Team"
)

// ActorRole differentiates customer and support actors.
type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleSupport  ActorRole = "support"
)

// Ticket is the aggregate for support requests. AssignedTeam is fixed at
// creation time; Responses and Timeline are append-only.
type Ticket struct {
	ID            string           `json:"id"`
	CustomerID    string           `json:"customerId"`
	CustomerName  string           `json:"customerName"`
	CustomerEmail string           `json:"customerEmail"`
	Subject       string           `json:"subject"`
	Description   string           `json:"description"`
	Category      TicketCategory   `json:"category"`
	Status        TicketStatus     `json:"status"`
	Urgency       TicketUrgency    `json:"urgency"`
	AssignedTeam  Team             `json:"assignedTeam"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
	Responses     []TicketResponse `json:"responses"`
	Timeline      []TimelineEvent  `json:"timeline"`
}

// TicketResponse captures one message in a ticket thread.
type TicketResponse struct {
	ID         string    `json:"id"`
	Author     string    `json:"author"`
	AuthorRole ActorRole `json:"authorRole"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TimelineEvent is an immutable audit trail entry on a ticket.
type TimelineEvent struct {
	ID        string    `json:"id"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
}
