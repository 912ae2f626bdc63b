package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/storefront/internal/api/http"
	"github.com/spec-kit/storefront/internal/auth"
	"github.com/spec-kit/storefront/internal/config"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/observability"
	"github.com/spec-kit/storefront/internal/persistence"
	"github.com/spec-kit/storefront/internal/ratelimit"
	"github.com/spec-kit/storefront/internal/repository"
	"github.com/spec-kit/storefront/internal/repository/memory"
	"github.com/spec-kit/storefront/internal/service"
	"github.com/spec-kit/storefront/internal/session"
	"github.com/spec-kit/storefront/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.App, cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, closeStore := openStore(ctx, cfg, logger)
	defer closeStore()

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	deps := service.Dependencies{
		Repos:      repos,
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     logger,
	}
	if redis.Enabled() {
		deps.Sessions = session.NewRedisStore(redis.Client)
		deps.Limiter = ratelimit.NewRedisLimiter(redis.Client, cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow())
	}

	storefront := service.NewStorefront(cfg, deps)
	worker.StartNotificationWorker(storefront.Notifications, logger)

	app := httptransport.NewServer(httptransport.ServerDeps{
		Config:     cfg,
		Logger:     logger,
		Metrics:    observability.NewMetrics(),
		Storefront: storefront,
		Redis:      redis,
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()), zap.String("backend", cfg.Store.Backend))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}

// openStore returns the repositories for the configured backend and a func releasing them.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.Repositories, func()) {
	if cfg.Store.Backend == config.BackendPostgres {
		pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), persistence.DefaultMigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		return repository.NewPostgresRepositories(pg.PoolHandle()), pg.Close
	}

	opts := memory.Options{Latency: cfg.Store.Latency()}
	if cfg.Store.SeedDemo {
		seed, err := memory.DemoSeed(time.Now(), auth.Hasher(cfg.Auth.BcryptCost))
		if err != nil {
			logger.Fatal("failed to build demo data", zap.Error(err))
		}
		opts.Seed = seed
	}
	return memory.NewStore(opts).Repositories(), func() {}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
