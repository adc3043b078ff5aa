package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/domain/dto"
	"github.com/jmakori/safari-quote-service/internal/i18n"
)

// TimeoutConfig configures the request timeout middleware.
type TimeoutConfig struct {
	// Timeout is the maximum duration for request processing.
	Timeout time.Duration
	// ErrorMessage is the fallback message when no translator is installed.
	ErrorMessage string
}

// DefaultTimeoutConfig allows 30 seconds, ample for a full trip quote
// against a cold catalog.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout:      30 * time.Second,
		ErrorMessage: "Request timeout",
	}
}

// Timeout bounds request processing. Handlers observe the deadline through
// the request context; if one overruns without writing, the client gets 504.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		var mu sync.Mutex
		handlerDone := false
		done := make(chan struct{})

		go func() {
			defer func() {
				recover() //nolint:errcheck
				close(done)
			}()
			c.Next()
			mu.Lock()
			handlerDone = true
			mu.Unlock()
		}()

		select {
		case <-done:
			return
		case <-ctx.Done():
		}

		mu.Lock()
		defer mu.Unlock()
		if handlerDone || c.Writer.Written() {
			return
		}
		writeTimeoutResponse(c, cfg)
	}
}

func writeTimeoutResponse(c *gin.Context, cfg TimeoutConfig) {
	message := cfg.ErrorMessage
	if translator := i18n.GetTranslator(); translator != nil {
		message = translator.Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
	}

	errorResp := dto.NewError(dto.ErrCodeTimeout, message).
		WithRequestID(GetRequestID(c))
	c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
}

// TimeoutWithDuration builds the middleware from just a duration.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
