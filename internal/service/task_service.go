package service

import (
	"context"
	"encoding/json"
	"errors"
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

// TaskService owns the task collection. It is the only writer: the
// presentation layer reads priority-annotated views and never computes
// tiers itself.
type TaskService struct {
	mu         sync.Mutex
	tasks      []domain.Task
	notified   map[string]struct{}
	snapshots  persistence.SnapshotStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// TaskDependencies bundles collaborators for the task service.
type TaskDependencies struct {
	Snapshots  persistence.SnapshotStore
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
	// Now is the injected clock; defaults to time.Now.
	Now func() time.Time
	// SeedTasks supplies fallback data when no usable snapshot exists;
	// defaults to seed.Tasks.
	SeedTasks func(time.Time) []domain.Task
}

// TaskCreateInput describes task creation payload. The boundary validates
// required fields; the store assumes they are present.
type TaskCreateInput struct {
	Title                string
	Description          string
	Deadline             time.Time
	WarningBoundaryHours int
}

// NewTaskService loads the persisted collection, falling back to seed data
// when the snapshot is absent or unparsable.
func NewTaskService(ctx context.Context, deps TaskDependencies) *TaskService {
	nowFn := deps.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	seedFn := deps.SeedTasks
	if seedFn == nil {
		seedFn = seed.Tasks
	}

	s := &TaskService{
		notified:   make(map[string]struct{}),
		snapshots:  deps.Snapshots,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		now:        nowFn,
	}
	s.tasks = s.loadOrSeed(ctx, seedFn)
	return s
}

// AddTask creates a new active task at the front of the collection and
// returns it.
func (s *TaskService) AddTask(ctx context.Context, input TaskCreateInput) domain.Task {
	now := s.now()
	task := domain.Task{
		ID:                   seed.NewTaskID(),
		Title:                input.Title,
		Description:          input.Description,
		Deadline:             input.Deadline,
		WarningBoundaryHours: input.WarningBoundaryHours,
		Status:               domain.TaskStatusActive,
		CreatedAt:            now,
	}

	s.mu.Lock()
	s.tasks = append([]domain.Task{task}, s.tasks...)
	snapshot := append([]domain.Task(nil), s.tasks...)
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.publish(ctx, events.Event{
		Type:      events.EventTaskCreated,
		SubjectID: task.ID,
		Actor:     "System",
		Payload:   events.TaskCreatedPayload{Title: task.Title, Deadline: task.Deadline},
	})
	return task
}

// CompleteTask marks the task completed. Unknown ids are a silent no-op.
func (s *TaskService) CompleteTask(ctx context.Context, id string) {
	now := s.now()

	s.mu.Lock()
	var completed *domain.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id && s.tasks[i].Status != domain.TaskStatusCompleted {
			task := s.tasks[i]
			task.Status = domain.TaskStatusCompleted
			completedAt := now
			task.CompletedAt = &completedAt
			s.tasks[i] = task
			completed = &task
			break
		}
	}
	snapshot := append([]domain.Task(nil), s.tasks...)
	s.mu.Unlock()

	if completed == nil {
		return
	}
	s.persist(ctx, snapshot)
	s.publish(ctx, events.Event{
		Type:      events.EventTaskCompleted,
		SubjectID: completed.ID,
		Actor:     "System",
		Payload:   events.TaskCompletedPayload{Title: completed.Title, CompletedAt: *completed.CompletedAt},
	})
}

// DeleteTask removes the task permanently. Unknown ids are a silent no-op.
func (s *TaskService) DeleteTask(ctx context.Context, id string) {
	s.mu.Lock()
	kept := s.tasks[:0:0]
	removed := false
	for _, task := range s.tasks {
		if task.ID == id {
			removed = true
			continue
		}
		kept = append(kept, task)
	}
	s.tasks = kept
	snapshot := append([]domain.Task(nil), s.tasks...)
	s.mu.Unlock()

	if !removed {
		return
	}
	s.persist(ctx, snapshot)
	s.publish(ctx, events.Event{
		Type:      events.EventTaskDeleted,
		SubjectID: id,
		Actor:     "System",
	})
}

// Tasks returns a copy of the stored collection.
func (s *TaskService) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Task(nil), s.tasks...)
}

// ListWithPriority projects every task through the priority classifier at
// the current clock reading.
func (s *TaskService) ListWithPriority() []domain.TaskWithPriority {
	now := s.now()
	tasks := s.Tasks()
	result := make([]domain.TaskWithPriority, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, classify.ComputePriority(task, now))
	}
	return result
}

// CheckBoundaries re-evaluates every task and emits a notification the
// first time a task is observed at the attention or overdue tier. The
// notified-key set is never cleared, so a (task, tier) pair notifies at
// most once for the life of the service even if the tier is re-entered.
func (s *TaskService) CheckBoundaries(ctx context.Context) {
	now := s.now()
	tasks := s.Tasks()

	for _, task := range tasks {
		projected := classify.ComputePriority(task, now)

		var eventType events.EventType
		switch projected.Priority {
		case domain.TierAttention:
			eventType = events.EventTaskDueSoon
		case domain.TierOverdue:
			eventType = events.EventTaskOverdue
		default:
			continue
		}

		key := string(projected.Priority) + "-" + task.ID
		s.mu.Lock()
		_, seen := s.notified[key]
		if !seen {
			s.notified[key] = struct{}{}
		}
		s.mu.Unlock()
		if seen {
			continue
		}

		s.publish(ctx, events.Event{
			Type:      eventType,
			SubjectID: task.ID,
			Actor:     "System",
			Payload: events.TaskBoundaryPayload{
				Title:       task.Title,
				Tier:        projected.Priority,
				Message:     projected.BoundaryMessage,
				RemainingMs: projected.RemainingMs,
			},
		})
	}
}

func (s *TaskService) loadOrSeed(ctx context.Context, seedFn func(time.Time) []domain.Task) []domain.Task {
	if data, err := s.snapshots.Load(ctx, persistence.TaskSnapshotKey); err == nil {
		var tasks []domain.Task
		if jsonErr := json.Unmarshal(data, &tasks); jsonErr == nil {
			return tasks
		}
		s.logger.Warn("discarding malformed task snapshot")
	} else if !errors.Is(err, persistence.ErrNoSnapshot) {
		s.logger.Warn("loading task snapshot", zap.Error(err))
	}

	tasks := seedFn(s.now())
	s.persist(ctx, tasks)
	return tasks
}

// persist writes the collection snapshot best-effort; failures are logged
// and never surfaced because the snapshot is a cache, not a system of
// record.
func (s *TaskService) persist(ctx context.Context, tasks []domain.Task) {
	data, err := json.Marshal(tasks)
	if err != nil {
		s.logger.Warn("encoding task snapshot", zap.Error(err))
		return
	}
	if err := s.snapshots.Save(ctx, persistence.TaskSnapshotKey, data); err != nil {
		s.logger.Warn("persisting task snapshot", zap.Error(err))
	}
}

func (s *TaskService) publish(ctx context.Context, event events.Event) {
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
