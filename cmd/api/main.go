package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/community-engage/internal/api/http"
	"github.com/spec-kit/community-engage/internal/api/http/handlers"
	"github.com/spec-kit/community-engage/internal/auth"
	"github.com/spec-kit/community-engage/internal/config"
	"github.com/spec-kit/community-engage/internal/events"
	"github.com/spec-kit/community-engage/internal/observability"
	"github.com/spec-kit/community-engage/internal/persistence"
	"github.com/spec-kit/community-engage/internal/repository"
	"github.com/spec-kit/community-engage/internal/service"
	"github.com/spec-kit/community-engage/internal/worker"
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

	metrics := observability.NewMetrics()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	ngoRepo := repository.NewNGORepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	rsvpRepo := repository.NewRSVPRepository(pool)

	snapshots := persistence.NewRedisSnapshotStore(redis)
	dispatcher := events.NewInMemoryDispatcher(logger)

	sessions := service.NewSessionService(service.SessionDependencies{
		Snapshots: snapshots,
		NGORepo:   ngoRepo,
		EventRepo: eventRepo,
		Logger:    logger,
		Metrics:   metrics,
	})

	authService := service.NewAuthService(*cfg, userRepo)
	engagementService := service.NewEngagementService(userRepo, sessions, dispatcher, logger)
	verificationService := service.NewVerificationService(ngoRepo, sessions, dispatcher, logger)
	rsvpService := service.NewRSVPService(rsvpRepo, dispatcher)
	chatService := service.NewChatService(dispatcher)
	notificationService := service.NewNotificationService(sessions, dispatcher, logger)

	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(redis, pg),
		Auth:           handlers.NewAuthHandler(authService, sessions),
		State:          handlers.NewStateHandler(sessions, engagementService),
		NGOs:           handlers.NewNGOHandler(sessions, verificationService),
		Events:         handlers.NewEventHandler(sessions, rsvpService, logger),
		Chats:          handlers.NewChatHandler(sessions, chatService),
		Notifications:  handlers.NewNotificationHandler(sessions),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
