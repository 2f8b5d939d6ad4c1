package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/deskboard/internal/domain"
)

var baseTime = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func activeTask(createdAt, deadline time.Time, warningHours int) domain.Task {
	return domain.Task{
		ID:                   "task-test",
		Title:                "test task",
		Deadline:             deadline,
		WarningBoundaryHours: warningHours,
		Status:               domain.TaskStatusActive,
		CreatedAt:            createdAt,
	}
}

func TestComputePriorityCompleted(t *testing.T) {
	completedAt := baseTime.Add(-time.Hour)
	task := activeTask(baseTime.Add(-48*time.Hour), baseTime.Add(-24*time.Hour), 12)
	task.Status = domain.TaskStatusCompleted
	task.CompletedAt = &completedAt

	// Completed wins regardless of the deadline being long past.
	result := ComputePriority(task, baseTime)
	assert.Equal(t, domain.TierCompleted, result.Priority)
	assert.Equal(t, int64(0), result.RemainingMs)
	assert.Equal(t, 100.0, result.ProgressPercent)
	assert.Empty(t, result.BoundaryMessage)
}

func TestComputePriorityTiers(t *testing.T) {
	cases := []struct {
		name        string
		deadline    time.Duration
		warning     int
		wantTier    domain.TaskTier
		wantMessage bool
	}{
		{"far from deadline", 72 * time.Hour, 24, domain.TierActive, false},
		{"inside warning boundary", 30 * time.Minute, 1, domain.TierAttention, true},
		{"exactly at warning boundary", time.Hour, 1, domain.TierAttention, true},
		{"exactly at deadline", 0, 1, domain.TierOverdue, true},
		{"past deadline", -time.Hour, 1, domain.TierOverdue, true},
		{"zero warning boundary still overdue at deadline", 0, 0, domain.TierOverdue, true},
		{"zero warning boundary active before deadline", time.Minute, 0, domain.TierActive, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := activeTask(baseTime.Add(-24*time.Hour), baseTime.Add(tc.deadline), tc.warning)
			result := ComputePriority(task, baseTime)
			assert.Equal(t, tc.wantTier, result.Priority)
			assert.Equal(t, tc.deadline.Milliseconds(), result.RemainingMs)
			if tc.wantMessage {
				assert.NotEmpty(t, result.BoundaryMessage)
			} else {
				assert.Empty(t, result.BoundaryMessage)
			}
		})
	}
}

func TestComputePriorityAttentionScenario(t *testing.T) {
	task := activeTask(baseTime.Add(-time.Hour), baseTime.Add(30*time.Minute), 1)

	result := ComputePriority(task, baseTime)
	require.Equal(t, domain.TierAttention, result.Priority)
	assert.Equal(t, int64(1_800_000), result.RemainingMs)
	assert.Equal(t, "Only 30m left. Please complete this task soon.", result.BoundaryMessage)
}

func TestComputePriorityProgress(t *testing.T) {
	task := activeTask(baseTime, baseTime.Add(10*time.Hour), 1)

	halfway := ComputePriority(task, baseTime.Add(5*time.Hour))
	assert.InDelta(t, 50.0, halfway.ProgressPercent, 0.001)

	beforeCreation := ComputePriority(task, baseTime.Add(-time.Hour))
	assert.Equal(t, 0.0, beforeCreation.ProgressPercent)

	past := ComputePriority(task, baseTime.Add(20*time.Hour))
	assert.Equal(t, 100.0, past.ProgressPercent)

	// Monotonically non-decreasing as the clock advances.
	previous := -1.0
	for step := 0; step <= 12; step++ {
		now := baseTime.Add(time.Duration(step) * time.Hour)
		progress := ComputePriority(task, now).ProgressPercent
		assert.GreaterOrEqual(t, progress, previous)
		previous = progress
	}
}

func TestComputePriorityDegenerateDeadline(t *testing.T) {
	task := activeTask(baseTime, baseTime, 1)

	result := ComputePriority(task, baseTime)
	assert.Equal(t, domain.TierOverdue, result.Priority)
	assert.Equal(t, 100.0, result.ProgressPercent)
}

func TestFormatTimeRemaining(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "Overdue"},
		{-5000, "Overdue"},
		{25 * 60 * 1000, "25m"},
		{90 * 60 * 1000, "1h 30m"},
		{26*60*60*1000 + 10*60*1000, "1d 2h"},
		{3 * 24 * 60 * 60 * 1000, "3d 0h"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTimeRemaining(tc.ms), "ms=%d", tc.ms)
	}
}

func TestFormatOverdueTime(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{-60 * 60 * 1000, "1h overdue"},
		{60 * 60 * 1000, "1h overdue"},
		{-(26*60*60*1000 + 30*60*1000), "1d 2h overdue"},
		{-45 * 60 * 1000, "45m overdue"},
		// No minute granularity once an hour or more overdue.
		{-(60*60*1000 + 59*60*1000), "1h overdue"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatOverdueTime(tc.ms), "ms=%d", tc.ms)
	}
}
