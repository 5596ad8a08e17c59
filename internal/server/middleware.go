// internal/server/middleware.go
package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"ai-navigator/internal/common/logger"
	"ai-navigator/internal/common/metrics"
	"ai-navigator/internal/common/observability"
)

// RequestID assigns a uuid to every request lacking one and echoes it
// on both the inbound request and the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set("X-Request-ID", requestID)
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// Recovery converts panics into 500 responses instead of dropped
// connections.
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic while serving request", map[string]interface{}{
						"panic":  fmt.Sprintf("%v", rec),
						"path":   r.URL.Path,
						"method": r.Method,
					})
					http.Error(w, `{"error":{"code":"INTERNAL_ERROR","message":"Internal error"}}`, http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request with status and latency.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Info("request handled", map[string]interface{}{
				"method":    r.Method,
				"path":      r.URL.Path,
				"status":    ww.Status(),
				"bytes":     ww.BytesWritten(),
				"duration":  time.Since(started).String(),
				"requestId": r.Header.Get("X-Request-ID"),
			})
		})
	}
}

// Metrics records Prometheus counters plus the otel meter and a span
// per request. Routes are recorded by chi pattern, not raw path, to
// keep label cardinality bounded.
func Metrics(obs *observability.Observability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			ctx, span := obs.StartSpan(r.Context(), r.Method+" "+r.URL.Path)
			defer span.End()

			next.ServeHTTP(ww, r.WithContext(ctx))

			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(ww.Status())
			elapsed := time.Since(started)

			metrics.HTTPRequests.WithLabelValues(route, r.Method, status).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(route, r.Method).Observe(elapsed.Seconds())
			obs.RecordRequest(ctx, route, status)
			obs.RecordRequestDuration(ctx, route, elapsed)
		})
	}
}
