package prometheus

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mediflow/mediflow-api/pkg/metrics"
)

const unmatchedRoute = "unmatched"

type Handler struct {
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
}

func New(m *metrics.Metrics, gatherer prometheus.Gatherer) *Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Handler{metrics: m, gatherer: gatherer}
}

// Middleware records request count, latency and error responses per route
// template, so path parameters do not explode label cardinality.
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		h.metrics.HTTPRequests.WithLabelValues(method, route, status).Inc()
		h.metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		if c.Writer.Status() >= 400 {
			h.metrics.HTTPErrors.WithLabelValues(method, route, status).Inc()
		}
	}
}

func (h *Handler) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
}
