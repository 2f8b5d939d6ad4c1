package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/deskboard/internal/service"
)

// BoundaryWorker periodically re-evaluates task tiers so one-time
// attention/overdue notifications fire while the process runs.
type BoundaryWorker struct {
	tasks    *service.TaskService
	interval time.Duration
	logger   *zap.Logger
}

// NewBoundaryWorker constructs the worker.
func NewBoundaryWorker(tasks *service.TaskService, interval time.Duration, logger *zap.Logger) *BoundaryWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &BoundaryWorker{tasks: tasks, interval: interval, logger: logger}
}

// Run checks once immediately, then on every tick until the context is
// cancelled.
func (w *BoundaryWorker) Run(ctx context.Context) {
	w.tasks.CheckBoundaries(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("boundary worker stopped")
			return
		case <-ticker.C:
			w.tasks.CheckBoundaries(ctx)
		}
	}
}
