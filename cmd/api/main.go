// Copyright (c) 2026 NexPad. All rights reserved.
// Author: dev@nexpad.ir

// Command api is the entry point for the NexPad HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire HTTP handlers and seed the bootstrap admin account.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nexpad/nexpad/internal/api"
	"github.com/nexpad/nexpad/internal/content/blog"
	"github.com/nexpad/nexpad/internal/content/category"
	"github.com/nexpad/nexpad/internal/content/course"
	"github.com/nexpad/nexpad/internal/content/message"
	"github.com/nexpad/nexpad/internal/content/stats"
	"github.com/nexpad/nexpad/internal/media"
	"github.com/nexpad/nexpad/internal/platform/config"
	"github.com/nexpad/nexpad/internal/platform/constants"
	"github.com/nexpad/nexpad/internal/platform/migration"
	pgstore "github.com/nexpad/nexpad/internal/platform/postgres"
	redisstore "github.com/nexpad/nexpad/internal/platform/redis"
	"github.com/nexpad/nexpad/internal/platform/sec"
	"github.com/nexpad/nexpad/internal/platform/storage"
	"github.com/nexpad/nexpad/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "nexpad"))
	slog.SetDefault(log)

	log.Info("[NexPad] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "nexpad"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Security Services ──────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// Object storage is optional; the media handler degrades gracefully when
	// the client is nil.
	store, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
	must(log, err, "initialize object storage")
	if store == nil {
		log.Warn("object storage not configured, uploads disabled")
	}

	// ── 7. Health Handlers ────────────────────────────────────────────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewRepository(pool)
	sessionStore := auth.NewSessionStore(rdb)
	authService := auth.NewService(userRepository, sessionStore, tokenService, log)
	authHandler := auth.NewHandler(authService, cfg.IsProduction())

	must(log, authService.EnsureAdmin(startupCtx, cfg.AdminEmail, cfg.AdminPassword), "seed admin account")

	blogService := blog.NewService(blog.NewRepository(pool), log)
	categoryService := category.NewService(category.NewRepository(pool), log)
	courseRepository, lessonRepository := course.NewRepository(pool)
	courseService := course.NewService(courseRepository, lessonRepository, log)
	messageService := message.NewService(message.NewRepository(pool), log)
	statsService := stats.NewService(stats.NewRepository(pool), log)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      authHandler,
		Blog:      blog.NewHandler(blogService),
		Category:  category.NewHandler(categoryService),
		Course:    course.NewHandler(courseService),
		Message:   message.NewHandler(messageService),
		Stats:     stats.NewHandler(statsService),
		Media:     media.NewHandler(store, log),
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, authService, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
