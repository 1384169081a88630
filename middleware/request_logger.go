package middleware

import (
	"time"

	"hms/services/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger log method, path, status và thời gian xử lý mỗi request
func RequestLogger(l logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		l.Info("%s %s -> %d (%s)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
