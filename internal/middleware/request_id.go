// Package middleware provides HTTP middleware components for the quote service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id on both requests and responses.
const RequestIDHeader = "X-Request-ID"

// ContextKey type for context keys to avoid collisions.
type ContextKey string

// RequestIDKey is where the request id lives in the gin context.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with an id for log correlation. A
// client-supplied X-Request-ID is honored; otherwise a UUID is generated.
// The id is echoed back on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request id set by the RequestID middleware, or
// an empty string outside of it.
func GetRequestID(c *gin.Context) string {
	id, exists := c.Get(string(RequestIDKey))
	if !exists {
		return ""
	}
	requestID, ok := id.(string)
	if !ok {
		return ""
	}
	return requestID
}
