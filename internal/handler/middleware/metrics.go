package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"turfbook/internal/pkg/metrics"
)

// MetricsMiddleware records request counts and latency per route template,
// not per raw path, to keep the label set bounded.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		m.HTTPRequests.WithLabelValues(c.Request.Method, route, status).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
