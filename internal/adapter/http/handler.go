package httpadapter

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promo-scheduler/internal/core/port"
)

// Pinger reports whether a dependency is reachable. *pgxpool.Pool
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the inbound adapter for the operational status surface. It
// exposes the last outcome of every scheduled job, a health probe and the
// Prometheus metrics. All routes are read-only.
type Handler struct {
	status port.StatusReader
	db     Pinger
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. db may be nil,
// in which case the health probe only reflects job outcomes.
func NewHandler(status port.StatusReader, db Pinger, logger *slog.Logger) *Handler {
	h := &Handler{status: status, db: db, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/jobs", h.handleListJobs)
		r.Get("/jobs/{name}", h.handleGetJob)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
