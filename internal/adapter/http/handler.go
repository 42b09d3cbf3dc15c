package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"groupbuy/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the wish use case and a logger for structured logging. Routes are
// registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.WishUseCase
	logger *slog.Logger
	now    func() time.Time
	router chi.Router

	corsOrigins []string
}

// HandlerOption customises a Handler.
type HandlerOption func(*Handler)

// WithCORS allows browser calls from the given origins.
func WithCORS(origins []string) HandlerOption {
	return func(h *Handler) { h.corsOrigins = origins }
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.WishUseCase, logger *slog.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{svc: svc, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if len(h.corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.corsOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
			ExposedHeaders: []string{"Location"},
			MaxAge:         300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Post("/join", h.handleJoin)
				r.Post("/cancel", h.handleCancel)
				r.Get("/participants", h.handleParticipants)
			})
		})
		r.Post("/participations/{id}/revoke", h.handleRevoke)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
