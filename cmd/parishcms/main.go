// Copyright (c) 2026 Cornerstone Parish Digital <web@cornerstoneparish.org>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the parish CMS server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parishcms/internal/cache"
	"parishcms/internal/config"
	"parishcms/internal/database"
	"parishcms/internal/handlers"
	"parishcms/internal/middleware"
	"parishcms/internal/router"
	"parishcms/internal/session"
	"parishcms/internal/storage"
	"parishcms/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the default admin user and site pages (no-op if data exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session cookies are HTTPS-only outside development.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Data stores.
	userStore := store.NewUserStore(db)
	pageStore := store.NewPageStore(db)
	settingStore := store.NewSettingStore(db)
	eventStore := store.NewEventStore(db)
	sermonStore := store.NewSermonStore(db)
	bulletinStore := store.NewBulletinStore(db)

	// Connect to S3-compatible object storage (optional — the site works
	// without it, with media endpoints disabled).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — media uploads disabled")
	}

	// Full-page HTML cache in Valkey.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Slow down credential guessing on the login endpoint.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer loginLimiter.Stop()

	// Handler groups.
	pagesHandlers := handlers.NewPages(pageStore, pageCache)
	publicHandlers := handlers.NewPublic(pageStore, settingStore, pageCache)
	settingsHandlers := handlers.NewSettings(settingStore, pageCache)
	mediaHandlers := handlers.NewMedia(storageClient)
	eventsHandlers := handlers.NewEvents(eventStore)
	sermonsHandlers := handlers.NewSermons(sermonStore)
	bulletinsHandlers := handlers.NewBulletins(bulletinStore)
	resetHandlers := handlers.NewReset(pageStore, pageCache)
	authHandlers := handlers.NewAuth(sessionStore, userStore)

	r := router.New(
		sessionStore, cfg.DevOrigin, loginLimiter,
		pagesHandlers, publicHandlers, settingsHandlers, mediaHandlers,
		eventsHandlers, sermonsHandlers, bulletinsHandlers,
		resetHandlers, authHandlers,
	)

	// WriteTimeout accommodates large media uploads to the bucket.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
