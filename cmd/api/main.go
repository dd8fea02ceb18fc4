package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	httptransport "github.com/admitly/portal-service/internal/api/http"
	"github.com/admitly/portal-service/internal/api/http/handlers"
	"github.com/admitly/portal-service/internal/auth"
	"github.com/admitly/portal-service/internal/config"
	"github.com/admitly/portal-service/internal/events"
	"github.com/admitly/portal-service/internal/i18n"
	"github.com/admitly/portal-service/internal/navigation"
	"github.com/admitly/portal-service/internal/observability"
	"github.com/admitly/portal-service/internal/persistence"
	"github.com/admitly/portal-service/internal/repository"
	"github.com/admitly/portal-service/internal/service"
	"github.com/admitly/portal-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
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

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		applied, err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger)
		if err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		logger.Info("migrations complete", zap.Int("applied", applied))
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	bundle, err := i18n.LoadDefault(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Fatal("failed to load message catalogs", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(reg)

	dispatcher := events.NewInMemoryDispatcher(events.WithFailureHook(func(e events.Event, err error) {
		metrics.RecordEventFailure(string(e.Type))
		logger.Warn("event handler failed", zap.String("type", string(e.Type)), zap.Error(err))
	}))

	pool := pg.PoolHandle()
	roleService := service.NewRoleService(service.RoleServiceDeps{
		Repo:     repository.NewRoleRepository(pool),
		Cache:    repository.NewRedisRoleCache(redis.Client),
		CacheTTL: cfg.Roles.CacheTTL(),
		Logger:   logger.Named("roles"),
		Metrics:  metrics,
	})
	dashboardService := service.NewDashboardService(service.DashboardDeps{
		Roles:      roleService,
		Profiles:   repository.NewProfileRepository(pool),
		Dispatcher: dispatcher,
		Logger:     logger.Named("dashboard"),
		Metrics:    metrics,
	})

	registry := navigation.NewRegistry(navigation.RegistryConfig{
		MaxSessions: cfg.Navigation.MaxSessions,
		SessionTTL:  cfg.Navigation.SessionTTL(),
		OnEvict: func(string) {
			metrics.RecordSessionEvicted()
		},
		TrackerOptions: []navigation.Option{navigation.WithCapacity(cfg.Navigation.MaxEntries)},
	})
	navigationService := service.NewNavigationService(service.NavigationDeps{
		Registry:   registry,
		Dispatcher: dispatcher,
		Logger:     logger.Named("navigation"),
		Metrics:    metrics,
	})

	auditWorker := worker.StartAuditWorker(ctx, dispatcher, logger, cfg.Audit)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTLMinutes)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
	})
	httptransport.RegisterMiddlewares(app, logger, metrics, bundle, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, map[string]handlers.Pinger{
			"postgres": pg,
			"redis":    redis,
		}),
		Dashboard:       handlers.NewDashboardHandler(dashboardService, bundle),
		Navigation:      handlers.NewNavigationHandler(navigationService),
		AuthMiddleware:  auth.NewAuthMiddleware(tokens),
		VerifyEmailPath: cfg.Auth.VerifyEmailPath,
		Gatherer:        reg,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}

	cancel()
	if auditWorker != nil {
		<-auditWorker.Done()
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
