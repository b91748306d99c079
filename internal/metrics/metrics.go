// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_signups_total",
		Help: "Accounts created.",
	})

	SigninFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_signin_failures_total",
		Help: "Sign-in attempts rejected with invalid credentials.",
	})

	EmailsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Outbound emails by kind and result.",
	}, []string{"kind", "result"})
)

// RecordEmail counts one delivery attempt.
func RecordEmail(kind string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	EmailsSentTotal.WithLabelValues(kind, result).Inc()
}

// Middleware records request count and latency. Unmatched routes are
// grouped under one label to keep cardinality bounded.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method

		HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
