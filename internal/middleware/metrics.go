package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/nextstop-api/internal/service"
)

const unmatchedRoute = "unmatched"

// Metrics records duration and count per route template. Requests that match
// no route share one label so unknown ids and probes cannot explode cardinality.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
