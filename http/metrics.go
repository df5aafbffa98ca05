package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var latencyBuckets = []float64{5, 25, 100, 500, 2000}

var calculationsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "fincalc_calculations_total",
		Help: "Number of calculations performed, partitioned by operation.",
	}, []string{"operation"})

func observeCalculation(operation string) {
	calculationsTotal.WithLabelValues(operation).Inc()
}

// MetricsMiddleware exposes prometheus metrics for request count and
// latency partitioned by status code, method, and route pattern.
type MetricsMiddleware struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetricsMiddleware returns a new prometheus middleware for the
// provided service name.
func NewMetricsMiddleware(name string) *MetricsMiddleware {
	var m MetricsMiddleware
	m.requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "fincalc_requests_total",
			Help:        "Number of HTTP requests partitioned by status code, method and route.",
			ConstLabels: prometheus.Labels{"service": name},
		}, []string{"code", "method", "path"})

	m.latency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        "fincalc_request_duration_milliseconds",
		Help:        "Time spent on the request partitioned by status code, method and route.",
		ConstLabels: prometheus.Labels{"service": name},
		Buckets:     latencyBuckets,
	}, []string{"code", "method", "path"})

	return &m
}

// MustRegisterDefault registers the collectors on the default registry.
func (m *MetricsMiddleware) MustRegisterDefault() {
	prometheus.MustRegister(m.requests, m.latency, calculationsTotal)
}

// Handler returns a handler for the middleware pattern.
func (m *MetricsMiddleware) Handler(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			rp := rctx.RoutePattern()
			since := float64(time.Since(start).Milliseconds())
			m.requests.WithLabelValues(strconv.Itoa(ww.Status()), r.Method, rp).Inc()
			m.latency.WithLabelValues(strconv.Itoa(ww.Status()), r.Method, rp).Observe(since)
		}
	}
	return http.HandlerFunc(fn)
}
