// Package middleware provides audit logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmakori/safari-quote-service/internal/domain/model"
	"github.com/jmakori/safari-quote-service/internal/service"
)

// AuditLog records a catalog or itinerary mutation, e.g. action types
// "save_place", "delete_accommodation", "save_itinerary".
func AuditLog(logs service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	submitAuditEntry(logs, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed mutation together with the cause.
func AuditLogError(logs service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	entry := auditEntry(c, "error", actionType, message, fields)
	entry.Error = err.Error()
	submitAuditEntry(logs, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		ActionType: actionType,
		Fields:     fields,
	}
}

// submitAuditEntry writes off the request path so mutations do not wait on
// log storage.
func submitAuditEntry(logs service.LoggingService, entry *model.LogEntry) {
	if logs == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = logs.CreateLog(ctx, entry)
	}()
}
