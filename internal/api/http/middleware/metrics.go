package middleware

import (
	"strconv"
	"time"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/observability"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per matched route.
func Metrics(m *observability.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.HTTPDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
