// internal/server/router.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ai-navigator/internal/common/database"
	"ai-navigator/internal/common/logger"
	"ai-navigator/internal/common/observability"
	generateroadmap "ai-navigator/internal/handlers/generate-roadmap"
	"ai-navigator/internal/handlers/status"
)

// Deps carries everything the router mounts.
type Deps struct {
	Generate *generateroadmap.Handler
	Status   *status.Handler
	Redis    *database.RedisClient
	Logger   logger.Logger
	Obs      *observability.Observability
}

// NewRouter builds the chi router with the full middleware chain and
// all API routes.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Recovery(deps.Logger))
	r.Use(RequestLogger(deps.Logger))
	r.Use(Metrics(deps.Obs))

	r.Route("/api", func(r chi.Router) {
		r.Get("/", deps.Status.Root)
		r.Get("/status", deps.Status.List)
		r.Post("/status", deps.Status.Create)
		r.Post("/roadmap/generate", deps.Generate.Handle)
	})

	r.Get("/healthz", healthz(deps.Redis))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func healthz(rc *database.RedisClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		body := map[string]string{"status": "ok"}
		code := http.StatusOK

		if rc == nil {
			body["redis"] = "not configured"
		} else if err := rc.Ping(ctx); err != nil {
			body["status"] = "degraded"
			body["redis"] = err.Error()
			code = http.StatusServiceUnavailable
		} else {
			body["redis"] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(body)
	}
}
