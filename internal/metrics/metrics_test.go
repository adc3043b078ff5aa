package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusMiddleware_CountsByStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PrometheusMiddleware())
	router.GET("/api/places", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.GET("/api/quote", func(c *gin.Context) {
		c.String(http.StatusInternalServerError, "boom")
	})

	okBefore := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/api/places", "200"))
	errBefore := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/api/quote", "500"))

	for _, path := range []string{"/api/places", "/api/places", "/api/quote"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	}

	okAfter := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/api/places", "200"))
	errAfter := testutil.ToFloat64(HTTPRequestTotal.WithLabelValues("GET", "/api/quote", "500"))

	assert.Equal(t, float64(2), okAfter-okBefore)
	assert.Equal(t, float64(1), errAfter-errBefore)
}

func TestRecordQuoteCalculation(t *testing.T) {
	before := testutil.ToFloat64(QuoteCalculationsTotal.WithLabelValues("success"))

	RecordQuoteCalculation(100*time.Millisecond, "success")
	RecordQuoteCalculation(50*time.Millisecond, "success")

	after := testutil.ToFloat64(QuoteCalculationsTotal.WithLabelValues("success"))
	assert.Equal(t, float64(2), after-before)
}

func TestRecordRoomSuggestion(t *testing.T) {
	before := testutil.ToFloat64(RoomSuggestionsTotal.WithLabelValues("not_found"))

	RecordRoomSuggestion("not_found")

	after := testutil.ToFloat64(RoomSuggestionsTotal.WithLabelValues("not_found"))
	assert.Equal(t, float64(1), after-before)
}

func TestRecordCacheOperation(t *testing.T) {
	hitBefore := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))

	RecordCacheOperation("get", "hit")
	RecordCacheOperation("get", "miss")

	hitAfter := testutil.ToFloat64(CacheOperationsTotal.WithLabelValues("get", "hit"))
	assert.Equal(t, float64(1), hitAfter-hitBefore)
}

func TestUpdateCacheMetrics(t *testing.T) {
	UpdateCacheMetrics(75, 100)

	assert.Equal(t, float64(75), testutil.ToFloat64(CacheSize))
	assert.Equal(t, float64(100), testutil.ToFloat64(CacheCapacity))
}
