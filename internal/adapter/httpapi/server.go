// Package httpapi exposes the yield table lookups over HTTP. Responses
// are JSON by default; clients asking for text/html get a rendered page.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/yield-table-service/internal/domain"
)

// Catalog is the lookup surface the handlers call.
type Catalog interface {
	ListMeta() ([]domain.YieldTableMeta, error)
	GetMeta(id int) (domain.YieldTableMeta, error)
	GetTable(id int) (domain.YieldTable, error)
	GetInterpolated(id int, target float64) (domain.YieldClass, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the yield table API plus health, readiness, and metrics
// endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an HTTP server with the /v1 API routes and the
// operational endpoints. The clock feeds request-duration logging so
// tests can freeze it.
func NewServer(addr string, cat Catalog, corsOrigins []string, logger *slog.Logger, clock clockwork.Clock) *Server {
	h := &handler{cat: cat, logger: logger}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(accessLog(logger, clock))

	r.Get("/healthz", h.health)
	r.Get("/readyz", h.ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/yield-tables-meta", h.listMeta)
		r.Get("/yield-tables-meta/{yieldTableID}", h.getMeta)
		r.Get("/yield-tables/{yieldTableID}", h.getTable)
		r.Get("/yield-tables/{yieldTableID}/interpolated/{interpolationValue}", h.getInterpolated)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      r,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}
