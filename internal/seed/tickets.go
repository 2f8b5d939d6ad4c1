package seed

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/spec-kit/deskboard/internal/classify"
	"github.com/spec-kit/deskboard/internal/domain"
)

var customerNames = []string{
	"Sarah Johnson", "Michael Chen", "Emily Rodriguez", "David Kim",
	"Jessica Thompson", "James Wilson", "Amanda Foster", "Robert Martinez",
	"Lisa Anderson", "Christopher Lee", "Jennifer Brown", "Matthew Davis",
	"Nicole Taylor", "Daniel Garcia", "Ashley Moore",
}

var ticketSubjects = map[domain.TicketCategory][]string{
	domain.CategoryBilling: {
		"Invoice discrepancy for last month",
		"Unable to update payment method",
		"Unexpected charge on my account",
		"Need billing statement for tax purposes",
		"Payment failed but amount deducted",
	},
	domain.CategoryAccount: {
		"Cannot reset my password",
		"Two-factor authentication not working",
		"Account locked after multiple attempts",
		"Unable to update email address",
		"Profile settings not saving",
	},
	domain.CategoryTechnical: {
		"Application crashes on startup",
		"Data sync issues between devices",
		"Slow performance on dashboard",
		"Export feature not working",
		"Integration with third-party app failing",
	},
	domain.CategoryRefund: {
		"Request refund for unused subscription",
		"Double charged for single purchase",
		"Service not as described, requesting refund",
		"Cancellation within trial period",
		"Refund for accidental purchase",
	},
	domain.CategoryGeneral: {
		"How to upgrade my plan?",
		"Questions about enterprise features",
		"Need help understanding pricing",
		"Feature request for mobile app",
		"General feedback about service",
	},
}

var ticketDescriptions = map[domain.TicketCategory]string{
	domain.CategoryBilling:   "I noticed an issue with my billing and need assistance resolving this matter. The amount charged does not match what I expected based on my subscription plan.",
	domain.CategoryAccount:   "I am experiencing difficulties accessing my account. I have tried the standard troubleshooting steps but the issue persists.",
	domain.CategoryTechnical: "There seems to be a technical problem with the application. This is affecting my workflow and I need urgent assistance.",
	domain.CategoryRefund:    "I would like to request a refund for my recent purchase. Please review my account and process this request.",
	domain.CategoryGeneral:   "I have some questions about the service and would appreciate if someone could provide clarification on a few points.",
}

// NewTicketID returns a "TKT-" identifier with a 6-digit number drawn from
// the given source.
func NewTicketID(rng *rand.Rand) string {
	return fmt.Sprintf("TKT-%06d", 100000+rng.Intn(900000))
}

// Tickets generates count plausible tickets spread over the last thirty
// days, newest first. The rand source is explicit so tests can pin the
// output.
func Tickets(rng *rand.Rand, now time.Time, count int) []domain.Ticket {
	if count <= 0 {
		count = 50
	}

	tickets := make([]domain.Ticket, 0, count)
	thirtyDaysAgo := now.Add(-30 * 24 * time.Hour)

	for i := 0; i < count; i++ {
		category := domain.TicketCategories[rng.Intn(len(domain.TicketCategories))]
		status := domain.TicketStatuses[rng.Intn(len(domain.TicketStatuses))]
		urgency := domain.TicketUrgencies[rng.Intn(len(domain.TicketUrgencies))]
		customerName := customerNames[rng.Intn(len(customerNames))]
		createdAt := randomTime(rng, thirtyDaysAgo, now)
		updatedAt := randomTime(rng, createdAt, now)
		team := classify.RouteCategory(category)

		subjects := ticketSubjects[category]
		ticket := domain.Ticket{
			ID:            NewTicketID(rng),
			CustomerID:    fmt.Sprintf("CUST-%d", 1000+i),
			CustomerName:  customerName,
			CustomerEmail: strings.ToLower(strings.ReplaceAll(customerName, " ", ".")) + "@email.com",
			Subject:       subjects[rng.Intn(len(subjects))],
			Description:   ticketDescriptions[category],
			Category:      category,
			Status:        status,
			Urgency:       urgency,
			AssignedTeam:  team,
			CreatedAt:     createdAt,
			UpdatedAt:     updatedAt,
			Responses:     []domain.TicketResponse{},
			Timeline: []domain.TimelineEvent{
				{
					ID:        fmt.Sprintf("tl-seed-%d-1", i),
					Event:     "Ticket Created",
					Timestamp: createdAt,
					Actor:     customerName,
				},
			},
		}

		if status != domain.TicketStatusNew {
			ticket.Timeline = append(ticket.Timeline, domain.TimelineEvent{
				ID:        fmt.Sprintf("tl-seed-%d-2", i),
				Event:     "Assigned to " + string(team),
				Timestamp: createdAt.Add(30 * time.Minute),
				Actor:     "System",
			})
			ticket.Responses = append(ticket.Responses, domain.TicketResponse{
				ID:         fmt.Sprintf("resp-seed-%d-1", i),
				Author:     "Support Agent",
				AuthorRole: domain.RoleSupport,
				Message:    "Thank you for contacting us. We are looking into your issue and will get back to you shortly.",
				CreatedAt:  createdAt.Add(2 * time.Hour),
			})
		}

		if status == domain.TicketStatusResolved || status == domain.TicketStatusClosed {
			ticket.Timeline = append(ticket.Timeline, domain.TimelineEvent{
				ID:        fmt.Sprintf("tl-seed-%d-3", i),
				Event:     fmt.Sprintf("Status changed to %s", status),
				Timestamp: updatedAt,
				Actor:     "Support Agent",
			})
			ticket.Responses = append(ticket.Responses, domain.TicketResponse{
				ID:         fmt.Sprintf("resp-seed-%d-2", i),
				Author:     "Support Agent",
				AuthorRole: domain.RoleSupport,
				Message:    "Your issue has been resolved. Please let us know if you need any further assistance.",
				CreatedAt:  updatedAt,
			})
		}

		tickets = append(tickets, ticket)
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})
	return tickets
}

func randomTime(rng *rand.Rand, start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int63n(int64(span))))
}
