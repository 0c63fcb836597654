package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fotogram_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// InteractionWrites counts like and comment mutations by kind and outcome.
	InteractionWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fotogram_interaction_writes_total",
		Help: "Total number of like/comment mutations by kind and outcome",
	}, []string{"kind", "outcome"})

	// FeedFetches counts feed list queries by feed kind and cache result.
	FeedFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fotogram_feed_fetches_total",
		Help: "Total number of feed fetches by feed kind and cache result",
	}, []string{"feed", "cache"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}

// MetricsMiddleware registers the /metrics endpoint and returns the request
// instrumentation handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus, app *fiber.App) fiber.Handler {
	prom.RegisterAt(app, "/metrics")
	return prom.Middleware
}
