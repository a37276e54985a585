// Package metrics exposes Prometheus collectors and the gin middleware that feeds them.
// This is part of the platform layer and contains no business logic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	httpInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Number of HTTP requests currently being served",
		},
	)

	estimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_estimates_total",
			Help: "Price estimates produced, by source (remote or local)",
		},
		[]string{"source"},
	)

	predictorFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "valuation_predictor_fallbacks_total",
			Help: "Remote predictor failures answered by the local engine",
		},
		[]string{"reason"},
	)
)

// Middleware records request count, latency and in-flight gauge.
// The matched route template is used as the label to keep cardinality low.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		labels := prometheus.Labels{
			"method": c.Request.Method,
			"route":  route,
			"status": strconv.Itoa(c.Writer.Status()),
		}
		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// EstimateProduced counts one estimate from the given source.
func EstimateProduced(source string) {
	estimatesTotal.WithLabelValues(source).Inc()
}

// PredictorFallback counts one remote predictor failure.
func PredictorFallback(reason string) {
	predictorFallbacks.WithLabelValues(reason).Inc()
}
