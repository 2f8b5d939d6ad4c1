package classify

import (
	"fmt"
	"time"

	"github.com/spec-kit/deskboard/internal/domain"
)

const (
	minuteMs = int64(time.Minute / time.Millisecond)
	hourMs   = int64(time.Hour / time.Millisecond)
	dayMs    = 24 * hourMs
)

// ComputePriority projects a task onto its urgency tier at the given instant.
// Pure function of its inputs; callers inject the clock.
func ComputePriority(task domain.Task, now time.Time) domain.TaskWithPriority {
	if task.Status == domain.TaskStatusCompleted {
		return domain.TaskWithPriority{
			Task:            task,
			Priority:        domain.TierCompleted,
			RemainingMs:     0,
			ProgressPercent: 100,
		}
	}

	remainingMs := task.Deadline.Sub(now).Milliseconds()
	total := task.Deadline.Sub(task.CreatedAt).Milliseconds()
	elapsed := now.Sub(task.CreatedAt).Milliseconds()

	// A deadline at or before creation is treated as fully elapsed.
	progress := 100.0
	if total > 0 {
		progress = float64(elapsed) / float64(total) * 100
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	}

	result := domain.TaskWithPriority{
		Task:            task,
		Priority:        domain.TierActive,
		RemainingMs:     remainingMs,
		ProgressPercent: progress,
	}

	switch {
	case remainingMs <= 0:
		result.Priority = domain.TierOverdue
		result.BoundaryMessage = "This task is overdue. Please complete it as soon as possible."
	case remainingMs <= int64(task.WarningBoundaryHours)*hourMs:
		result.Priority = domain.TierAttention
		result.BoundaryMessage = fmt.Sprintf("Only %s left. Please complete this task soon.", FormatTimeRemaining(remainingMs))
	}
	return result
}

// FormatTimeRemaining renders a positive millisecond duration as "{d}d {h}h",
// "{h}h {m}m" or "{m}m" depending on magnitude.
func FormatTimeRemaining(ms int64) string {
	if ms <= 0 {
		return "Overdue"
	}

	days := ms / dayMs
	hours := (ms % dayMs) / hourMs
	minutes := (ms % hourMs) / minuteMs

	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FormatOverdueTime renders how far past the deadline a task is. Minutes are
// only shown below the one-hour mark.
func FormatOverdueTime(ms int64) string {
	if ms < 0 {
		ms = -ms
	}

	days := ms / dayMs
	hours := (ms % dayMs) / hourMs

	if days > 0 {
		return fmt.Sprintf("%dd %dh overdue", days, hours)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh overdue", hours)
	}
	return fmt.Sprintf("%dm overdue", ms/minuteMs)
}
