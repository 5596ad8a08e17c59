// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoadmapGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadmap_generations_total",
			Help: "Total number of roadmap generations by source",
		},
		[]string{"source"}, // "provider" or "synthesized"
	)

	RoadmapGenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "roadmap_generation_failures_total",
			Help: "Total number of failed roadmap generations by error code",
		},
		[]string{"error_code"},
	)

	RoadmapGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "roadmap_generation_duration_seconds",
			Help: "Duration of roadmap generation in seconds",
		},
		[]string{"source"},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "provider_requests_total",
			Help: "Total number of outbound AI provider requests",
		},
		[]string{"provider", "status"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"route", "method"},
	)
)
