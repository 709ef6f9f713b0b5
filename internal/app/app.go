package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fontsmith/fontsmith-backend/internal/adapter/provider/anthropic"
	"github.com/fontsmith/fontsmith-backend/internal/adapter/provider/googlefonts"
	"github.com/fontsmith/fontsmith-backend/internal/config"
	"github.com/fontsmith/fontsmith-backend/internal/history"
	"github.com/fontsmith/fontsmith-backend/internal/service/suggest"
	"github.com/fontsmith/fontsmith-backend/internal/transport/middleware"
	"github.com/fontsmith/fontsmith-backend/internal/transport/rest"
)

const rateLimitCleanupInterval = 5 * time.Minute

// Run is the application entry point. It loads configuration, wires the
// providers, service, and HTTP transport together, and serves until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	systemPrompt, err := anthropic.LoadSystemPrompt(cfg.Model.SystemPromptPath)
	if err != nil {
		return fmt.Errorf("load system prompt: %w", err)
	}

	model := anthropic.NewClient(cfg.Model, systemPrompt, logger)
	catalog := googlefonts.NewClient(cfg.Catalog, logger)
	suggestSvc := suggest.NewService(logger, model, catalog)

	sessions := history.NewManager(cfg.History.Capacity, cfg.History.SessionTTL)
	defer sessions.Stop()

	router := rest.NewRouter(rest.Handlers{
		Suggest: rest.NewSuggestHandler(suggestSvc, sessions, logger),
		History: rest.NewHistoryHandler(sessions, logger),
		Health:  rest.NewHealthHandler(Version),
	})

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Session,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, rateLimitCleanupInterval)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit())
	}
	handler := middleware.Chain(mws...)(router)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
