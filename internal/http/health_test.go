package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmakori/safari-quote-service/internal/circuitbreaker"
)

func probeHealth(t *testing.T, handler *HealthHandler, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.Register(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHealthHandler_Liveness(t *testing.T) {
	w := probeHealth(t, NewHealthHandler(), "/healthz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestHealthHandler_Readiness_NoChecks(t *testing.T) {
	w := probeHealth(t, NewHealthHandler(), "/readyz")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])

	checks, ok := body["checks"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ok", checks["service"])
}

func TestHealthHandler_Readiness_HealthyBreaker(t *testing.T) {
	handler := NewHealthHandler()
	handler.RegisterCircuitBreaker("mongodb_catalog", circuitbreaker.New(circuitbreaker.DefaultConfig()))

	w := probeHealth(t, handler, "/readyz")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mongodb_catalog_circuit")
}

func TestHealthHandler_Readiness_OpenBreakerDegrades(t *testing.T) {
	cb := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "mongodb_catalog",
	})
	_ = cb.Execute(context.Background(), func() error { return errors.New("connection refused") })

	handler := NewHealthHandler()
	handler.RegisterCircuitBreaker("mongodb_catalog", cb)

	w := probeHealth(t, handler, "/readyz")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
}
