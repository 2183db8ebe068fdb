package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpReqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Count of HTTP requests"},
		[]string{"path", "method", "status"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latency of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"},
	)
	httpErrTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_request_errors_total", Help: "Count of failed HTTP requests by error code"},
		[]string{"path", "method", "code"},
	)
)

func init() {
	prometheus.MustRegister(httpReqTotal, httpLatency, httpErrTotal)
}

// ObserveRequest records a completed request.
func ObserveRequest(path, method string, status int, duration time.Duration) {
	if path == "" {
		path = "unmatched"
	}
	httpReqTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(path, method).Observe(duration.Seconds())
}

// ObserveError records a request that was rejected with a classified error.
func ObserveError(path, method, code string) {
	if path == "" {
		path = "unmatched"
	}
	httpErrTotal.WithLabelValues(path, method, code).Inc()
}
