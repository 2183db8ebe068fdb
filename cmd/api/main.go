package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/legalsuite/case-service/internal/api/http"
	"github.com/legalsuite/case-service/internal/api/http/handlers"
	"github.com/legalsuite/case-service/internal/auth"
	"github.com/legalsuite/case-service/internal/config"
	"github.com/legalsuite/case-service/internal/events"
	"github.com/legalsuite/case-service/internal/observability"
	"github.com/legalsuite/case-service/internal/persistence"
	"github.com/legalsuite/case-service/internal/repository"
	"github.com/legalsuite/case-service/internal/service"
	"github.com/legalsuite/case-service/internal/worker"
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
	lawyerRepo := repository.NewLawyerRepository(pool)
	lawsuitRepo := repository.NewLawsuitRepository(pool)

	if cfg.Postgres.RunSeeders {
		seeder := persistence.NewSeeder(userRepo, lawyerRepo, lawsuitRepo, cfg.Auth.BcryptCost, logger)
		if err := seeder.Run(ctx); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(logger, cfg.Notification)
	worker.StartNotificationWorker(dispatcher, notificationService)

	authService := service.NewAuthService(*cfg, userRepo)
	lawyerService := service.NewLawyerService(lawyerRepo)
	lawsuitService := service.NewLawsuitService(service.LawsuitDependencies{
		LawsuitRepo: lawsuitRepo,
		LawyerRepo:  lawyerRepo,
		Dispatcher:  dispatcher,
	})
	reportService := service.NewReportService(lawyerRepo, lawsuitRepo)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:             handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:              handlers.NewUsersHandler(authService),
		Lawyers:            handlers.NewLawyersHandler(lawyerService),
		Lawsuits:           handlers.NewLawsuitsHandler(lawsuitService),
		Reports:            handlers.NewReportsHandler(reportService),
		AuthMiddleware:     authMiddleware,
		LoginRatePerMinute: cfg.App.LoginRatePerMinute,
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
