package middleware

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompression(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalogPayload := gin.H{
		"places": []gin.H{
			{"id": "serengeti", "name": "Serengeti National Park"},
			{"id": "tarangire", "name": "Tarangire National Park"},
		},
	}

	router := gin.New()
	router.Use(Compression())
	router.GET("/api/safari-data", func(c *gin.Context) {
		c.JSON(http.StatusOK, catalogPayload)
	})

	t.Run("gzips when the client accepts it", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/safari-data", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

		gz, err := gzip.NewReader(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		body, err := io.ReadAll(gz)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Contains(t, string(body), "serengeti")
	})

	t.Run("gzip among multiple encodings", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/safari-data", nil)
		req.Header.Set("Accept-Encoding", "gzip, deflate, br")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	})

	t.Run("plain response without Accept-Encoding", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/safari-data", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Contains(t, w.Body.String(), "tarangire")
	})
}
