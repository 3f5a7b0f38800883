package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MikeSquared-Agency/Tally/internal/config"
	"github.com/MikeSquared-Agency/Tally/internal/hermes"
)

// maxBodyBytes caps request bodies before JSON decoding.
const maxBodyBytes = 4 << 20

func NewRouter(h hermes.Client, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.Server.RateLimitPerMinute))

	stats := NewStats()
	evaluations := NewEvaluationHandler(hermes.NewPublisher(h, logger), stats, cfg.Evaluation, logger)
	mx := NewMatrixHandler(cfg.Evaluation)
	admin := NewAdminHandler(stats)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.RequestSize(maxBodyBytes))

		r.Post("/evaluations", evaluations.Evaluate)
		r.Post("/matrix", mx.Template)
		r.Post("/matrix/resize", mx.Resize)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
