package seed

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/deskboard/internal/classify"
	"github.com/spec-kit/deskboard/internal/domain"
)

func TestTasksShape(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	tasks := Tasks(now)
	require.Len(t, tasks, 8)

	var completed, overdue int
	seen := map[string]bool{}
	for _, task := range tasks {
		assert.True(t, strings.HasPrefix(task.ID, "task-"), "id %q", task.ID)
		assert.False(t, seen[task.ID], "duplicate id %q", task.ID)
		seen[task.ID] = true

		if task.Status == domain.TaskStatusCompleted {
			completed++
			assert.NotNil(t, task.CompletedAt)
		} else {
			assert.Nil(t, task.CompletedAt)
			if !task.Deadline.After(now) {
				overdue++
			}
		}
	}
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, overdue)
}

func TestTicketsDeterministicUnderFixedSeed(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	first := Tickets(rand.New(rand.NewSource(7)), now, 50)
	second := Tickets(rand.New(rand.NewSource(7)), now, 50)
	assert.Equal(t, first, second)

	other := Tickets(rand.New(rand.NewSource(8)), now, 50)
	assert.NotEqual(t, first, other)
}

func TestTicketsConsistency(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	tickets := Tickets(rand.New(rand.NewSource(42)), now, 50)
	require.Len(t, tickets, 50)

	for i, ticket := range tickets {
		assert.True(t, strings.HasPrefix(ticket.ID, "TKT-"), "id %q", ticket.ID)
		assert.Len(t, ticket.ID, len("TKT-")+6)
		assert.Equal(t, classify.RouteCategory(ticket.Category), ticket.AssignedTeam)
		assert.False(t, ticket.UpdatedAt.Before(ticket.CreatedAt))
		require.NotEmpty(t, ticket.Timeline)
		assert.Equal(t, "Ticket Created", ticket.Timeline[0].Event)
		assert.Equal(t, ticket.CustomerName, ticket.Timeline[0].Actor)

		if ticket.Status == domain.TicketStatusNew {
			assert.Empty(t, ticket.Responses)
		} else {
			assert.NotEmpty(t, ticket.Responses)
		}

		// Newest first.
		if i > 0 {
			assert.False(t, ticket.CreatedAt.After(tickets[i-1].CreatedAt))
		}
	}
}

func TestTicketsDefaultCount(t *testing.T) {
	tickets := Tickets(rand.New(rand.NewSource(1)), time.Now(), 0)
	assert.Len(t, tickets, 50)
}
