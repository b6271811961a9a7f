package middleware

import (
	"time"

	"strategic-planning-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Logger logs every completed request with its status and latency
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := map[string]interface{}{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"query":     c.Request.URL.RawQuery,
			"status":    c.Writer.Status(),
			"latency":   time.Since(start).String(),
			"client_ip": c.ClientIP(),
		}
		if requestID, exists := c.Get("request_id"); exists {
			fields["request_id"] = requestID
		}
		if len(c.Errors) > 0 {
			fields["error"] = c.Errors.String()
		}

		log := logger.WithContext(c.Request.Context()).WithFields(fields)
		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Error("HTTP request completed with server error")
		case status >= 400:
			log.Warn("HTTP request completed with client error")
		default:
			log.Info("HTTP request completed")
		}
	}
}
