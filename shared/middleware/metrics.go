package middleware

import (
	"strconv"
	"time"

	"github.com/Rich-Wilkyness/social-media-api/shared/metrics"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware records request count and latency per route.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.RecordHTTPRequest(c.Request.Method, routePath(c), strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
