package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/logger"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// RequestLogger logs every request to the console and, when a logging
// service is wired, persists the entry to MongoDB. Persistence goes through
// the shared async logger when one is installed so the request path never
// waits on storage.
func RequestLogger(logs service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := &model.LogEntry{
			Timestamp:  time.Now(),
			Level:      levelForStatus(c.Writer.Status()),
			Message:    "HTTP request",
			RequestID:  GetRequestID(c),
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: c.Writer.Status(),
			Duration:   time.Since(start).Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}

		logToConsole(entry)

		if logs == nil {
			return
		}
		if al := GetAsyncLogger(); al != nil {
			al.Log(entry)
			return
		}
		// No worker pool installed; write from a detached goroutine.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = logs.CreateLog(ctx, entry)
		}()
	}
}

func logToConsole(entry *model.LogEntry) {
	log := logger.Logger().With().
		Str("request_id", entry.RequestID).
		Str("method", entry.Method).
		Str("path", entry.Path).
		Int("status_code", entry.StatusCode).
		Int64("duration_ms", entry.Duration).
		Str("ip", entry.IP).
		Str("user_agent", entry.UserAgent).
		Logger()

	switch entry.Level {
	case "error":
		log.Error().Msg(entry.Message)
	case "warn":
		log.Warn().Msg(entry.Message)
	default:
		log.Info().Msg(entry.Message)
	}
}

// levelForStatus maps an HTTP status to a log level.
func levelForStatus(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}
