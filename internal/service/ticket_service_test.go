package service

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/deskboard/internal/domain"
	"github.com/spec-kit/deskboard/internal/events"
	"github.com/spec-kit/deskboard/internal/persistence"
)

func newTicketFixture(t *testing.T) (*TicketService, *memorySnapshots, *recordingDispatcher, *testClock) {
	t.Helper()
	snapshots := newMemorySnapshots()
	dispatcher := &recordingDispatcher{}
	clock := &testClock{now: testStart}
	svc := NewTicketService(context.Background(), TicketDependencies{
		Snapshots:       snapshots,
		Dispatcher:      dispatcher,
		Logger:          zap.NewNop(),
		Now:             clock.Now,
		Rand:            rand.New(rand.NewSource(1)),
		SeedTicketCount: 5,
	})
	return svc, snapshots, dispatcher, clock
}

func TestTicketServiceSeedsWhenNoSnapshot(t *testing.T) {
	svc, _, _, _ := newTicketFixture(t)
	assert.Len(t, svc.ListAll(), 5)
}

func TestTicketServiceSeedsWhenSnapshotMalformed(t *testing.T) {
	snapshots := newMemorySnapshots()
	require.NoError(t, snapshots.Save(context.Background(), persistence.TicketSnapshotKey, []byte("!!")))

	svc := NewTicketService(context.Background(), TicketDependencies{
		Snapshots:       snapshots,
		Logger:          zap.NewNop(),
		Now:             func() time.Time { return testStart },
		Rand:            rand.New(rand.NewSource(1)),
		SeedTicketCount: 5,
	})
	assert.Len(t, svc.ListAll(), 5)
}

func TestAddTicketClassifiesAndRoutes(t *testing.T) {
	svc, _, dispatcher, _ := newTicketFixture(t)

	ticket := svc.AddTicket(context.Background(), TicketCreateInput{
		CustomerID:    "CUST-1001",
		CustomerName:  "John Smith",
		CustomerEmail: "john.smith@email.com",
		Subject:       "Billing problem",
		Description:   "This is an URGENT billing issue, please help",
	})

	assert.Regexp(t, `^TKT-\d{6}$`, ticket.ID)
	assert.Equal(t, domain.CategoryBilling, ticket.Category)
	assert.Equal(t, domain.UrgencyHigh, ticket.Urgency)
	assert.Equal(t, domain.TeamBilling, ticket.AssignedTeam)
	assert.Equal(t, domain.TicketStatusNew, ticket.Status)
	assert.Equal(t, testStart, ticket.CreatedAt)
	assert.Equal(t, testStart, ticket.UpdatedAt)
	assert.Empty(t, ticket.Responses)

	require.Len(t, ticket.Timeline, 2)
	assert.Equal(t, fmt.Sprintf("tl-%s-1", ticket.ID), ticket.Timeline[0].ID)
	assert.Equal(t, "Ticket Created", ticket.Timeline[0].Event)
	assert.Equal(t, "John Smith", ticket.Timeline[0].Actor)
	assert.Equal(t, "Assigned to Billing Team", ticket.Timeline[1].Event)
	assert.Equal(t, "System", ticket.Timeline[1].Actor)

	// Stored at the front of the collection.
	listed := svc.ListAll()
	require.Len(t, listed, 6)
	assert.Equal(t, ticket, listed[0])

	stored, found := svc.GetTicketByID(ticket.ID)
	require.True(t, found)
	assert.Equal(t, ticket, stored)

	assert.Len(t, dispatcher.ofType(events.EventTicketCreated), 1)
}

func TestAddTicketDefaultsToGeneralQuery(t *testing.T) {
	svc, _, _, _ := newTicketFixture(t)

	ticket := svc.AddTicket(context.Background(), TicketCreateInput{
		CustomerID:   "CUST-1001",
		CustomerName: "John Smith",
		Subject:      "How do I upgrade my plan?",
		Description:  "Just wondering what options exist.",
	})
	assert.Equal(t, domain.CategoryGeneral, ticket.Category)
	assert.Equal(t, domain.UrgencyMedium, ticket.Urgency)
	assert.Equal(t, domain.TeamGeneralSupport, ticket.AssignedTeam)
}

func TestUpdateTicketStatus(t *testing.T) {
	svc, _, dispatcher, clock := newTicketFixture(t)
	ctx := context.Background()

	ticket := svc.AddTicket(ctx, TicketCreateInput{
		CustomerID:   "CUST-1001",
		CustomerName: "John Smith",
		Subject:      "Subject",
		Description:  "Description",
	})
	timelineBefore := len(ticket.Timeline)

	updatedAt := testStart.Add(time.Hour)
	clock.Set(updatedAt)
	svc.UpdateTicketStatus(ctx, ticket.ID, domain.TicketStatusResolved)

	updated, found := svc.GetTicketByID(ticket.ID)
	require.True(t, found)
	assert.Equal(t, domain.TicketStatusResolved, updated.Status)
	assert.Equal(t, updatedAt, updated.UpdatedAt)
	assert.False(t, updated.UpdatedAt.Before(ticket.UpdatedAt))

	require.Len(t, updated.Timeline, timelineBefore+1)
	last := updated.Timeline[len(updated.Timeline)-1]
	assert.Equal(t, "Status changed to Resolved", last.Event)
	assert.Equal(t, "Support Agent", last.Actor)

	assert.Len(t, dispatcher.ofType(events.EventTicketStatusChanged), 1)

	// No state machine: reopening a closed ticket is allowed.
	svc.UpdateTicketStatus(ctx, ticket.ID, domain.TicketStatusClosed)
	svc.UpdateTicketStatus(ctx, ticket.ID, domain.TicketStatusNew)
	reopened, _ := svc.GetTicketByID(ticket.ID)
	assert.Equal(t, domain.TicketStatusNew, reopened.Status)
}

func TestUpdateTicketStatusUnknownIDIsNoop(t *testing.T) {
	svc, _, dispatcher, _ := newTicketFixture(t)

	before := svc.ListAll()
	svc.UpdateTicketStatus(context.Background(), "TKT-000000", domain.TicketStatusResolved)
	assert.Equal(t, before, svc.ListAll())
	assert.Empty(t, dispatcher.ofType(events.EventTicketStatusChanged))
}

func TestAddResponse(t *testing.T) {
	svc, _, dispatcher, clock := newTicketFixture(t)
	ctx := context.Background()

	ticket := svc.AddTicket(ctx, TicketCreateInput{
		CustomerID:   "CUST-1001",
		CustomerName: "John Smith",
		Subject:      "Subject",
		Description:  "Description",
	})

	respondedAt := testStart.Add(30 * time.Minute)
	clock.Set(respondedAt)
	svc.AddResponse(ctx, ticket.ID, "We are on it.", domain.RoleSupport)
	svc.AddResponse(ctx, ticket.ID, "Thanks for the quick reply!", domain.RoleCustomer)

	updated, found := svc.GetTicketByID(ticket.ID)
	require.True(t, found)
	require.Len(t, updated.Responses, 2)

	support := updated.Responses[0]
	assert.Equal(t, fmt.Sprintf("resp-%s-1", ticket.ID), support.ID)
	assert.Equal(t, "Support Agent", support.Author)
	assert.Equal(t, domain.RoleSupport, support.AuthorRole)

	customer := updated.Responses[1]
	assert.Equal(t, fmt.Sprintf("resp-%s-2", ticket.ID), customer.ID)
	assert.Equal(t, "John Smith", customer.Author)
	assert.Equal(t, domain.RoleCustomer, customer.AuthorRole)

	// Each response also appends a timeline entry and bumps updatedAt.
	assert.Equal(t, respondedAt, updated.UpdatedAt)
	require.Len(t, updated.Timeline, 4)
	assert.Equal(t, "Support Agent added a response", updated.Timeline[2].Event)
	assert.Equal(t, "Customer added a response", updated.Timeline[3].Event)

	assert.Len(t, dispatcher.ofType(events.EventTicketResponseAdded), 2)

	// Unknown id is a silent no-op.
	svc.AddResponse(ctx, "TKT-000000", "hello?", domain.RoleCustomer)
	assert.Len(t, dispatcher.ofType(events.EventTicketResponseAdded), 2)
}

func TestListFilters(t *testing.T) {
	svc, _, _, _ := newTicketFixture(t)
	ctx := context.Background()

	ticket := svc.AddTicket(ctx, TicketCreateInput{
		CustomerID:   "CUST-9999",
		CustomerName: "Jane Doe",
		Subject:      "Refund request",
		Description:  "Please process a refund for my purchase.",
	})

	byCustomer := svc.ListByCustomer("CUST-9999")
	require.Len(t, byCustomer, 1)
	assert.Equal(t, ticket.ID, byCustomer[0].ID)

	byTeam := svc.ListByTeam(domain.TeamFinance)
	found := false
	for _, item := range byTeam {
		assert.Equal(t, domain.TeamFinance, item.AssignedTeam)
		if item.ID == ticket.ID {
			found = true
		}
	}
	assert.True(t, found)

	assert.Empty(t, svc.ListByCustomer("CUST-0000"))
}

func TestTicketRoundTrip(t *testing.T) {
	svc, snapshots, _, _ := newTicketFixture(t)
	ctx := context.Background()

	ticket := svc.AddTicket(ctx, TicketCreateInput{
		CustomerID:   "CUST-1001",
		CustomerName: "John Smith",
		Subject:      "Invoice discrepancy",
		Description:  "The invoice total looks wrong.",
	})
	svc.UpdateTicketStatus(ctx, ticket.ID, domain.TicketStatusInProgress)
	svc.AddResponse(ctx, ticket.ID, "Checking with billing.", domain.RoleSupport)

	reloaded := NewTicketService(ctx, TicketDependencies{
		Snapshots: snapshots,
		Logger:    zap.NewNop(),
		Now:       func() time.Time { return testStart },
		Rand:      rand.New(rand.NewSource(99)),
	})
	assert.Equal(t, svc.ListAll(), reloaded.ListAll())
}

func TestStats(t *testing.T) {
	snapshots := newMemorySnapshots()
	clock := &testClock{now: testStart}
	svc := NewTicketService(context.Background(), TicketDependencies{
		Snapshots:       snapshots,
		Logger:          zap.NewNop(),
		Now:             clock.Now,
		Rand:            rand.New(rand.NewSource(1)),
		SeedTicketCount: 1,
	})
	ctx := context.Background()

	created := svc.AddTicket(ctx, TicketCreateInput{
		CustomerID:   "CUST-1001",
		CustomerName: "John Smith",
		Subject:      "urgent billing issue",
		Description:  "The charge is wrong and this is urgent.",
	})

	stats := svc.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, stats.Total, stats.Open+stats.Resolved)
	assert.GreaterOrEqual(t, stats.NewToday, 1)
	assert.GreaterOrEqual(t, stats.HighUrgency, 1)
	assert.Equal(t, stats.Total, sumCounts(stats.ByStatus))
	assert.GreaterOrEqual(t, stats.ByCategory[created.Category], 1)

	svc.UpdateTicketStatus(ctx, created.ID, domain.TicketStatusResolved)
	after := svc.Stats()
	assert.GreaterOrEqual(t, after.Resolved, 1)
}

func sumCounts(counts map[domain.TicketStatus]int) int {
	total := 0
	for _, count := range counts {
		total += count
	}
	return total
}
