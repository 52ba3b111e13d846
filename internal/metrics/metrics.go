package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests    *prometheus.CounterVec
	UpstreamSeconds *prometheus.HistogramVec
	UpstreamErrors  *prometheus.CounterVec
	SearchCache     *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "epo_http_requests_total",
			Help: "Total number of HTTP requests served.",
		}, []string{"method", "route", "status"}),
		UpstreamSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "epo_upstream_request_duration_seconds",
			Help:    "Duration of requests to upstream services.",
			Buckets: prometheus.DefBuckets,
		}, []string{"upstream"}),
		UpstreamErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "epo_upstream_errors_total",
			Help: "Total number of failed upstream requests.",
		}, []string{"upstream"}),
		SearchCache: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "epo_search_cache_total",
			Help: "Provider searches answered from memory (hit) or upstream (miss).",
		}, []string{"result"}),
	}
}

// ObserveUpstream records one upstream call.
func (m *Metrics) ObserveUpstream(upstream string, duration time.Duration, err error) {
	m.UpstreamSeconds.WithLabelValues(upstream).Observe(duration.Seconds())
	if err != nil {
		m.UpstreamErrors.WithLabelValues(upstream).Inc()
	}
}

func (m *Metrics) ObserveCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.SearchCache.WithLabelValues(result).Inc()
}

// Middleware counts requests by matched route so path parameters do not
// blow up label cardinality.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
