// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Folio portfolio server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the content store (bolt file or PostgreSQL with migrations).
//  4. Connect to Redis for admin flags, or keep them in memory.
//  5. Load the committed document and build the editor.
//  6. Wire HTTP handlers.
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

	"github.com/taibuivan/folio/internal/api"
	"github.com/taibuivan/folio/internal/auth"
	"github.com/taibuivan/folio/internal/content"
	"github.com/taibuivan/folio/internal/editor"
	"github.com/taibuivan/folio/internal/media"
	"github.com/taibuivan/folio/internal/platform/config"
	"github.com/taibuivan/folio/internal/platform/constants"
	"github.com/taibuivan/folio/internal/platform/migration"
	pgstore "github.com/taibuivan/folio/internal/platform/postgres"
	redisstore "github.com/taibuivan/folio/internal/platform/redis"
	"github.com/taibuivan/folio/internal/platform/sec"
	"github.com/taibuivan/folio/internal/theme"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", constants.AppName), slog.String("version", constants.AppVersion))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName), slog.String("version", constants.AppVersion))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageDriver),
	)

	// Root context lives until shutdown; background workers stop with it.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	startupCtx, startupCancel := context.WithTimeout(rootCtx, 30*time.Second)
	defer startupCancel()

	var checks []api.Check

	// ── 3. Content Store ──────────────────────────────────────────────────
	var repository content.Repository
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
		must(log, err, "connect to postgres")
		defer func() {
			log.Info("closing postgres pool")
			pool.Close()
		}()

		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
		repository = content.NewPostgresRepository(pool)

	default:
		bolt, err := content.OpenBolt(cfg.BoltPath)
		must(log, err, "open bolt store")
		defer func() {
			log.Info("closing bolt store")
			if cerr := bolt.Close(); cerr != nil {
				log.Error("bolt close error", slog.Any("error", cerr))
			}
		}()
		repository = bolt
	}

	persister := content.NewPersister(repository, log, content.WithQuota(cfg.StorageQuotaBytes))
	checks = append(checks, api.Check{Name: cfg.StorageDriver, Probe: persister.Ping})

	// ── 4. Admin Flags ────────────────────────────────────────────────────
	var flags auth.FlagRepository
	if cfg.RedisURL != "" {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		flags = auth.NewRedisFlagRepository(rdb)
		checks = append(checks, api.Check{Name: "redis", Probe: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}})
	} else {
		log.Warn("redis_not_configured", slog.String("flags", "memory"))
		flags = auth.NewMemoryFlagRepository()
	}

	tokens, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// ── 5. Document & Editor ──────────────────────────────────────────────
	canonical, source := persister.Load(startupCtx)
	registry := theme.NewRegistry(canonical.Settings, log)
	gate := auth.NewGate(flags, log)

	contentEditor := editor.New(canonical, persister, gate, log, editor.WithSettingsHook(registry.Apply))

	// A fresh store is seeded so later loads see the same document.
	if source == content.SourceDefault {
		if err := contentEditor.PersistCanonical(startupCtx); err != nil {
			log.Warn("seed_content_failed", slog.Any("error", err))
		}
	}

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	authService := auth.NewService(
		auth.Credentials{Username: cfg.AdminUsername, PasswordHash: cfg.AdminPasswordHash},
		flags, gate, tokens, contentEditor, contentEditor, cfg.SessionTTL, log,
	)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{Checks: checks}, log)

	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Auth:      auth.NewHandler(authService, !cfg.IsDevelopment()),
		Editor:    editor.NewHandler(contentEditor, media.NewEncoder(cfg.MaxUploadBytes), gate),
		Theme:     theme.NewHandler(registry, gate),
	}

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	server := api.NewServer(rootCtx, cfg, log, tokens, handlers)

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

	if contentEditor.IsDirty() {
		log.Warn("uncommitted_draft_dropped")
	}

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		rootCancel()
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
