package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// NewRouter assembles the API surface with its middleware chain.
func NewRouter(
	logger *zap.Logger,
	limiter *RateLimiter,
	calculator *CalculatorHandler,
	projection *ProjectionHandler,
	comparison *ComparisonHandler,
) chi.Router {

	router := chi.NewRouter()

	metricsMiddleware := NewMetricsMiddleware("fincalc")
	metricsMiddleware.MustRegisterDefault()

	router.Use(
		metricsMiddleware.Handler,
		RequestID,
		Logger(logger),
		chiMiddleware.Recoverer,
	)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"status": "ok"})
	})
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	router.Route("/v1", func(v1 chi.Router) {
		v1.Use(RateLimitMiddleware(limiter))

		v1.Post("/calculations/present-value", calculator.PresentValue)
		v1.Post("/calculations/future-value", calculator.FutureValue)
		v1.Post("/calculations/effective-rate", calculator.EffectiveRate)

		v1.Post("/projections/growth", projection.Growth)
		v1.Post("/projections/compounding-schedule", projection.CompoundingSchedule)

		v1.Post("/comparisons/rates", comparison.CompareRates)
	})

	return router
}
