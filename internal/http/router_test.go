package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jmakori/safari-quote-service/internal/service"
)

func TestNewRouter(t *testing.T) {
	tests := []struct {
		name string
		cfg  func() RouterConfig
	}{
		{
			name: "creates router with default config",
			cfg:  testRouterConfig,
		},
		{
			name: "creates router with idempotency enabled",
			cfg: func() RouterConfig {
				cfg := testRouterConfig()
				cfg.EnableIdempotency = true
				return cfg
			},
		},
		{
			name: "creates router with tight rate limiting",
			cfg: func() RouterConfig {
				cfg := testRouterConfig()
				cfg.RateLimit = 5
				cfg.RateWindow = time.Second
				return cfg
			},
		},
		{
			name: "creates router with swagger basic auth",
			cfg: func() RouterConfig {
				cfg := testRouterConfig()
				cfg.SwaggerUser = "admin"
				cfg.SwaggerPass = "secret"
				return cfg
			},
		},
		{
			name: "creates router without any services",
			cfg:  DefaultRouterConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(NewHealthHandler(), tt.cfg())
			assert.NotNil(t, router)
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "healthz endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readyz endpoint",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "swagger endpoint",
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "quote endpoint rejects an empty body",
			method:         http.MethodPost,
			path:           "/api/quote",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown route",
			method:         http.MethodGet,
			path:           "/api/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := testRouterConfig()
	cfg.RateLimit = 2
	cfg.RateWindow = time.Minute
	router := NewRouter(NewHealthHandler(), cfg)

	var last int
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/constants", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		last = w.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestRouter_WithoutItineraryService(t *testing.T) {
	// Itinerary routes are only mounted when persistence is wired.
	router := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/itineraries/export", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_RequestIDHeader(t *testing.T) {
	router := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/constants", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRegisterAPIRoutes_NilGuards(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		cfg  RouterConfig
		path string
	}{
		{
			name: "no calculator skips quote routes",
			cfg:  RouterConfig{Allocator: service.NewRoomAllocatorService()},
			path: "/api/quote",
		},
		{
			name: "no catalog skips catalog routes",
			cfg:  RouterConfig{},
			path: "/api/safari-data",
		},
		{
			name: "no itinerary service skips itinerary routes",
			cfg:  RouterConfig{},
			path: "/api/itineraries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			api := router.Group("/api")
			registerAPIRoutes(api, &tt.cfg)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code)
		})
	}
}
