// Package metrics exposes gateway counters on a dedicated listener,
// separate from the panel routes.
package metrics

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "Total number of panel HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "Panel HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	upstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_upstream_requests_total",
			Help: "Total number of requests issued to the EMS API.",
		},
		[]string{"method", "status"},
	)

	guardRedirectsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gateway_guard_redirects_total",
			Help: "Navigation requests redirected to /login by the access guard.",
		},
	)

	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_active_sessions",
			Help: "Sessions currently stored and unexpired.",
		},
	)
)

// Init registers the gateway collectors in the default registry
func Init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		upstreamRequestsTotal,
		guardRedirectsTotal,
		activeSessions,
	)
}

// Middleware records per-route request counts and latencies
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())
		httpRequestsTotal.WithLabelValues(c.Method(), route, status).Inc()
		httpRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// ObserveUpstream records one call to the EMS API
func ObserveUpstream(method string, status int) {
	upstreamRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// ObserveGuardRedirect records one guard rejection
func ObserveGuardRedirect() {
	guardRedirectsTotal.Inc()
}

// SetActiveSessions updates the session gauge (fed by the cron sweeper)
func SetActiveSessions(n int64) {
	activeSessions.Set(float64(n))
}

// Serve runs the /metrics listener. Blocking; run in a goroutine.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("⚠️ Metrics listener stopped: %v", err)
	}
}
