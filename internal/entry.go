// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/starford/ansuz/internal/agent"
	"github.com/starford/ansuz/internal/api"
	"github.com/starford/ansuz/internal/index"
	"github.com/starford/ansuz/internal/llm"
	"github.com/starford/ansuz/internal/mcpserver"
	"github.com/starford/ansuz/internal/memory"
	"github.com/starford/ansuz/internal/sse"
	"github.com/starford/ansuz/internal/storage"
	"github.com/starford/ansuz/internal/vault"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger. In MCP mode stdout carries the
	// protocol, so logs go to stderr.
	logOut := os.Stdout
	if app.mcpMode {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("http_address", cfg.App.HTTP.Address()),
		slog.String("vault_path", cfg.Vault.Path),
		slog.String("sqlite_path", cfg.SQLite.Path),
		slog.String("log_level", cfg.App.LogLevel.String()),
		slog.Bool("assistant_enabled", cfg.Assistant.Enabled()),
		slog.Bool("mcp_mode", app.mcpMode))

	// Ensure vault directory exists.
	if err := os.MkdirAll(cfg.Vault.Path, 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}

	// Initialize storage.
	store, err := storage.NewFS(cfg.Vault.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// Initialize SQLite index.
	db, err := index.Open(cfg.SQLite.Path)
	if err != nil {
		return fmt.Errorf("init index: %w", err)
	}
	defer db.Close()

	// Run initial sync.
	if err := index.Sync(db, store, logger); err != nil {
		logger.Warn("initial sync failed", slog.String("error", err.Error()))
	}

	lib := vault.New(store, db, logger)

	if app.mcpMode {
		logger.Info("Starting MCP server on stdio")
		return mcpserver.New(lib, db).ServeStdio()
	}

	// Assistant wiring (optional).
	var runner api.ChatRunner
	if cfg.Assistant.Enabled() {
		model, err := llm.New(llm.Config{
			Provider:  cfg.Assistant.Provider,
			APIKey:    cfg.Assistant.APIKey,
			Model:     cfg.Assistant.Model,
			BaseURL:   cfg.Assistant.BaseURL,
			MaxTokens: cfg.Assistant.MaxTokens,
		})
		if err != nil {
			return fmt.Errorf("init assistant: %w", err)
		}

		memStore, err := memory.OpenSQLite(cfg.Memory.Path)
		if err != nil {
			return fmt.Errorf("init memory store: %w", err)
		}
		defer memStore.Close()

		checkpoints, err := agent.OpenSQLiteCheckpointer(cfg.Memory.Path)
		if err != nil {
			return fmt.Errorf("init checkpointer: %w", err)
		}
		defer checkpoints.Close()

		runner = agent.New(model, lib, memStore, checkpoints, cfg.Assistant.UserID, agent.Options{
			Role:   cfg.Assistant.Role,
			Logger: logger,
		})
	}

	// SSE broker.
	broker := sse.NewBroker(2 * time.Second)
	defer broker.Close()

	// Build API service and router.
	svc := api.NewService(store, db, lib)
	apiRouter := api.NewRouter(svc, runner, cfg.Auth.AuthEnabled(), cfg.Auth.Token, broker)

	// Build chi router.
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Health check endpoints (unauthenticated).
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/health/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Mount API routes under /api.
	r.Mount("/api", apiRouter)

	httpServer := &http.Server{
		Addr:    cfg.App.HTTP.Address(),
		Handler: r,
	}

	logger.Info("Server starting...", slog.String("http_address", cfg.App.HTTP.Address()))

	g, gCtx := errgroup.WithContext(ctx)

	// Start file watcher with SSE callback.
	g.Go(func() error {
		return index.Watch(gCtx, db, store, cfg.Vault.Path, logger, func(kind, name string) {
			broker.PublishNoteEvent(kind, name)
		})
	})

	// Start HTTP server.
	g.Go(func() error {
		logger.Info("Starting HTTP server", slog.String("address", cfg.App.HTTP.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
