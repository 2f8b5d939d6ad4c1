package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/deskboard/internal/config"
	"github.com/spec-kit/deskboard/internal/events"
)

// NotificationService turns domain events into the demo's toast analog:
// structured log lines, plus an optional webhook stub.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTaskCreated, n.handleToast)
	n.dispatcher.Subscribe(events.EventTaskCompleted, n.handleToast)
	n.dispatcher.Subscribe(events.EventTaskDeleted, n.handleToast)
	n.dispatcher.Subscribe(events.EventTaskDueSoon, n.handleBoundary)
	n.dispatcher.Subscribe(events.EventTaskOverdue, n.handleBoundary)
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleToast)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleToast)
	n.dispatcher.Subscribe(events.EventTicketResponseAdded, n.handleToast)
}

func (n *NotificationService) handleToast(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("subject_id", event.SubjectID),
		zap.String("actor", event.Actor),
		zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleBoundary(ctx context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.TaskBoundaryPayload)
	n.logger.Warn(string(event.Type),
		zap.String("subject_id", event.SubjectID),
		zap.String("title", payload.Title),
		zap.String("message", payload.Message),
		zap.Int64("remaining_ms", payload.RemainingMs))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if n.cfg.WebhookURL == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("subject_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
