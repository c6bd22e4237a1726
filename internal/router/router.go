package router

import (
	"net/http"

	"dinehub/internal/handler"
	"dinehub/internal/metrics"
	"dinehub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates the HTTP router with all routes and middleware configured.
func New(
	orderHandler *handler.OrderHandler,
	menuHandler *handler.MenuHandler,
	categoryHandler *handler.CategoryHandler,
	userHandler *handler.UserHandler,
	m *metrics.Metrics,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics(m))
	r.Use(middleware.CORS)
	r.Use(middleware.APIKeyAuth(apiKey, logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	r.Handle("/metrics", m.Handler())

	orderHandler.RegisterRoutes(r)
	menuHandler.RegisterRoutes(r)
	categoryHandler.RegisterRoutes(r)
	userHandler.RegisterRoutes(r)

	return r
}
