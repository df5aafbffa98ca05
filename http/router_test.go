package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
	"fincalc/repository"
	"fincalc/service"
	"go.uber.org/zap"
)

// The metrics middleware registers on the default prometheus registry,
// so the router is built exactly once for the whole package.
func TestRouter(t *testing.T) {
	repo := repository.NewCalculationRepositoryMemory()
	calculatorService := service.NewCalculatorService(repo, repository.NewMockCache())
	projectionService := service.NewProjectionService(calculatorService)
	comparisonService := service.NewComparisonService(calculatorService)

	limiter := NewRateLimiter(3, time.Minute)
	defer limiter.Stop()

	router := NewRouter(zap.NewNop(), limiter,
		NewCalculatorHandler(calculatorService),
		NewProjectionHandler(projectionService),
		NewComparisonHandler(comparisonService))

	srv := httptest.NewServer(router)
	defer srv.Close()

	t.Run("health", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("metrics exposed", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("effective rate round trip", func(t *testing.T) {
		body := bytes.NewBufferString(`{"nominalRate": 0.10, "periodsPerYear": 365}`)
		resp, err := http.Post(srv.URL+"/v1/calculations/effective-rate", "application/json", body)
		require.NoError(t, err)
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("x-request-id"))

		var result domain.EffectiveRateResult
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		assert.InDelta(t, 0.10516, result.Rounded, 0.00001)
	})

	t.Run("rate limit", func(t *testing.T) {
		// The limiter allows 3 requests per window; one was spent above.
		var last int
		for i := 0; i < 3; i++ {
			body := bytes.NewBufferString(`{"nominalRate": 0.05, "periodsPerYear": 12}`)
			resp, err := http.Post(srv.URL+"/v1/calculations/effective-rate", "application/json", body)
			require.NoError(t, err)
			resp.Body.Close()
			last = resp.StatusCode
		}
		assert.Equal(t, http.StatusTooManyRequests, last)
	})
}
