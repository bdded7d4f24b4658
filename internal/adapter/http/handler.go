package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"backoffice/internal/core/port"
)

// Handler is the inbound HTTP adapter of the console. Everything under
// /api requires a session resolved by the configured SessionProvider.
type Handler struct {
	svc      port.ConsoleUseCase
	sessions port.SessionProvider
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. A zero
// timeout disables the per-request deadline.
func NewHandler(svc port.ConsoleUseCase, sessions port.SessionProvider, logger *slog.Logger, timeout time.Duration) *Handler {
	h := &Handler{svc: svc, sessions: sessions, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, h.logRequests, middleware.Recoverer)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(h.requireSession)

		r.Get("/products", h.handleCatalogProducts)
		r.Get("/categories", h.handleCategories)

		r.Route("/v1", func(r chi.Router) {
			r.Get("/session", h.handleSession)
			r.Get("/overview", h.handleOverview)

			r.Get("/settings", h.handleGetSettings)
			r.Put("/settings", h.handleUpdateSettings)
			r.Post("/settings/reset", h.handleResetSettings)

			r.Post("/products/sync", h.handleSyncCatalog)

			h.mountPages(r)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
