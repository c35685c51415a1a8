package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts Redis errors by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "yatube_redis_errors_total",
	Help: "Total number of Redis errors by operation type",
}, []string{"operation"})

// CacheRequests counts page cache lookups by outcome (hit or miss).
var CacheRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "yatube_page_cache_requests_total",
	Help: "Total number of page cache lookups by outcome",
}, []string{"outcome"})

// InitMetrics creates the Prometheus HTTP middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware returns the Fiber handler recording HTTP metrics.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
