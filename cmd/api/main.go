package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeverse_backend/internal/events"
	"homeverse_backend/internal/finance"
	"homeverse_backend/internal/history"
	"homeverse_backend/internal/history/repository"
	historysvc "homeverse_backend/internal/history/service"
	"homeverse_backend/internal/history/store"
	apphttp "homeverse_backend/internal/http"
	"homeverse_backend/internal/http/router"
	"homeverse_backend/internal/interior"
	"homeverse_backend/internal/scheduler"
	"homeverse_backend/internal/valuation"
	"homeverse_backend/internal/valuation/client"
	"homeverse_backend/internal/valuation/domain"
	valuationsvc "homeverse_backend/internal/valuation/service"
	"homeverse_backend/platform/config"
	"homeverse_backend/platform/db"
	"homeverse_backend/platform/logger"
	"homeverse_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.NewWithOptions(cfg.Env, logger.Options{File: cfg.GetLogFile(), Level: cfg.GetLogLevel()})
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	health := make(map[string]apphttp.HealthChecker)
	optional := make(map[string]apphttp.HealthChecker)

	var pool *pgxpool.Pool
	if cfg.IsDatabaseEnabled() {
		if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
			p, err := db.NewPool(ctx, cfg)
			if err != nil {
				return err
			}
			pool = p
			return nil
		}); err != nil {
			log.Error("failed to connect to database", "error", err)
			panic("failed to connect to database: " + err.Error())
		}
		defer pool.Close()

		if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
			return db.RunMigrations(ctx, pool, cfg.GetMigrationsDir())
		}); err != nil {
			log.Error("failed to run database migrations", "error", err)
			panic("failed to run database migrations: " + err.Error())
		}
		health["database"] = pool
		log.Info("database connection established")
	} else {
		log.Warn("DATABASE_URL not configured; estimate archive disabled")
	}

	var historyStore store.Store
	if cfg.IsRedisEnabled() {
		rdb, err := newRedisClient(ctx, cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			panic("failed to connect to redis: " + err.Error())
		}
		defer func() { _ = rdb.Close() }()
		redisStore := store.NewRedisStore(rdb, store.DefaultRedisKey, cfg.GetHistoryLimit())
		historyStore = redisStore
		health["redis"] = redisStore
		log.Info("redis search history enabled")
	} else {
		log.Warn("REDIS_URL not configured; using in-memory search history")
		historyStore = store.NewMemoryStore(cfg.GetHistoryLimit())
	}

	dataset, err := loadDataset(cfg)
	if err != nil {
		log.Error("failed to load market dataset", "error", err)
		panic("failed to load market dataset: " + err.Error())
	}
	log.Info("market dataset loaded", "market", dataset.Market, "zones", len(dataset.Zones))

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	var (
		persister historysvc.Persister
		archive   historysvc.Archive
	)
	if pool != nil {
		repo := repository.New(pool)
		archive = repo
		persister = historysvc.DirectPersister{Repo: repo}
		if cfg.IsRedisEnabled() {
			taskClient, err := scheduler.NewClient(cfg)
			if err != nil {
				log.Error("failed to initialize task client; archiving inline", "error", err)
			} else {
				defer func() { _ = taskClient.Close() }()
				persister = taskClient
			}
		}
	}
	historyModule := history.NewModule(
		historysvc.New(historyStore, persister, archive, cfg.GetPublicBaseURL(), log),
		eventBus,
	)

	interiorModule := interior.NewModule(nil, val, log)
	financeModule := finance.NewModule(dataset, val)

	deps := valuationsvc.Deps{
		Dataset:  dataset,
		Interior: interiorModule.Service(),
		Bus:      eventBus,
		Log:      log,
	}
	if cfg.IsRemotePredictorEnabled() {
		predictor := client.New(cfg.GetMLAPIURL(), cfg.GetMLAPITimeout(), log)
		deps.Predictor = predictor
		optional["predictor"] = predictor
		log.Info("remote predictor enabled", "url", cfg.GetMLAPIURL())
	} else {
		log.Warn("ML_API_URL not configured; using local price engine only")
	}
	valuationModule := valuation.NewModule(deps, val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   health,
		Optional: optional,
		Modules: []apphttp.Module{
			valuationModule,
			interiorModule,
			financeModule,
			historyModule,
		},
	}

	engine := router.New(app)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		eventBus.Wait()
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func loadDataset(cfg config.DatasetConfig) (*domain.Dataset, error) {
	if path := cfg.GetDatasetPath(); path != "" {
		return domain.LoadDataset(path)
	}
	return domain.Nagpur(), nil
}

func newRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if cfg.GetRedisTLSInsecure() {
		if opt.TLSConfig == nil {
			opt.TLSConfig = &tls.Config{}
		}
		opt.TLSConfig.InsecureSkipVerify = true
	}

	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
