// Package middleware holds the gin middleware shared by all MechParse API
// routes.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/turtacn/MechParse/internal/infrastructure/monitoring/logging"
	monprom "github.com/turtacn/MechParse/internal/infrastructure/monitoring/prometheus"
)

// RequestIDHeader carries the request id in both directions. An inbound
// value is honored so upstream proxies can stitch traces together.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns every request an id and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" if absent.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// AccessLog emits one structured entry per request and feeds the HTTP
// metrics. Install after RequestID.
func AccessLog(logger logging.Logger, metrics monprom.ParserMetrics) gin.HandlerFunc {
	logger = logger.Named("http")
	if metrics == nil {
		metrics = monprom.NewNoopMetrics()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.RecordHTTPRequest(route, status, elapsed)

		fields := []logging.Field{
			logging.String("request_id", GetRequestID(c)),
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Duration("elapsed", elapsed),
			logging.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logging.String("errors", c.Errors.String()))
		}
		switch {
		case status >= 500:
			logger.Error("request completed", fields...)
		case status >= 400:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

// Recovery converts panics into 500 responses with a logged stack marker
// instead of tearing the connection down.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	logger = logger.Named("http")
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("handler panic",
					logging.String("request_id", GetRequestID(c)),
					logging.String("path", c.Request.URL.Path),
					logging.Any("panic", r))
				c.AbortWithStatusJSON(500, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
