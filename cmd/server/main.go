package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/yield-table-service/internal/adapter/httpapi"
	"github.com/couchcryptid/yield-table-service/internal/catalog"
	"github.com/couchcryptid/yield-table-service/internal/config"
	"github.com/couchcryptid/yield-table-service/internal/observability"
	"github.com/couchcryptid/yield-table-service/internal/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	src := source.New(cfg.MetaPath(), cfg.TablesPath())
	cat := catalog.New(src, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The data files are a fixed deployment dependency; refuse to start
	// without them rather than 500 on every request.
	if err := cat.CheckReadiness(ctx); err != nil {
		logger.Error("data source check failed", "error", err)
		os.Exit(1)
	}

	srv := httpapi.NewServer(cfg.HTTPAddr, cat, cfg.CORSOrigins, logger, clockwork.NewRealClock())

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
