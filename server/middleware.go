package server

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// requestIDKey is the gin context key of the request ID.
const requestIDKey = "request_id"

var (
	// httpRequests counts handled requests.
	// Labels: path (route template), method, status
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waypath",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route, method and status",
	}, []string{"path", "method", "status"})

	// httpLatency measures request latency.
	// Labels: path
	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "waypath",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})
)

// requestID reuses a valid incoming X-Request-ID or assigns a new UUID.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// accessLog logs each request at INFO and records HTTP metrics.
func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		began := time.Now()
		c.Next()
		elapsed := time.Since(began)

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := c.Writer.Status()
		httpRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(status)).Inc()
		httpLatency.WithLabelValues(path).Observe(elapsed.Seconds())

		logger.InfoContext(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", status,
			"elapsed", elapsed,
			"request_id", c.GetString(requestIDKey),
		)
	}
}
