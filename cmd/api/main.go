package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/deskboard/internal/api/http"
	"github.com/spec-kit/deskboard/internal/api/http/handlers"
	"github.com/spec-kit/deskboard/internal/auth"
	"github.com/spec-kit/deskboard/internal/config"
	"github.com/spec-kit/deskboard/internal/events"
	"github.com/spec-kit/deskboard/internal/observability"
	"github.com/spec-kit/deskboard/internal/persistence"
	"github.com/spec-kit/deskboard/internal/seed"
	"github.com/spec-kit/deskboard/internal/service"
	"github.com/spec-kit/deskboard/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots, pinger, cleanup, err := buildSnapshotStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to init snapshot storage", zap.Error(err))
	}
	defer cleanup()

	dispatcher := events.NewInMemoryDispatcher()
	notifications := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	notifications.RegisterHandlers()

	taskService := service.NewTaskService(ctx, service.TaskDependencies{
		Snapshots:  snapshots,
		Dispatcher: dispatcher,
		Logger:     logger,
		SeedTasks:  seed.Tasks,
	})
	ticketService := service.NewTicketService(ctx, service.TicketDependencies{
		Snapshots:       snapshots,
		Dispatcher:      dispatcher,
		Logger:          logger,
		SeedTicketCount: cfg.Seed.TicketCount,
	})

	boundaryWorker := worker.NewBoundaryWorker(taskService, cfg.Tasks.BoundaryCheckInterval(), logger)
	go boundaryWorker.Run(ctx)

	tokenManager := auth.NewTokenManager(cfg.Session.Secret, cfg.Session.TTLMinutes)
	authMiddleware := auth.NewMiddleware(tokenManager)

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pinger),
		Session:        handlers.NewSessionHandler(tokenManager),
		Tasks:          handlers.NewTasksHandler(taskService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)
	cancel()

	_ = app.Shutdown()
}

// buildSnapshotStore selects the snapshot backend from config. The file
// backend is the default and needs no external services.
func buildSnapshotStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (persistence.SnapshotStore, handlers.Pinger, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverRedis:
		store := persistence.NewRedisSnapshotStore(cfg.Storage.Redis, logger)
		return store, store, store.Close, nil
	case config.StorageDriverPostgres:
		store, err := persistence.NewPostgresSnapshotStore(ctx, cfg.Storage.Postgres, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, store, store.Close, nil
	default:
		store, err := persistence.NewFileSnapshotStore(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, store, func() {}, nil
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
