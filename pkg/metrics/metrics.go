package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method", "path", "status"},
	)

	EmailsSummarized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_summarized_total",
			Help: "Total number of emails seen by the summarizer",
		},
		[]string{"state"}, // state: unread, read
	)
)

// RecordHTTPRequestDuration records one served request
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// AddEmailsSummarized adds n emails in the given state
func AddEmailsSummarized(state string, n int) {
	if n <= 0 {
		return
	}
	EmailsSummarized.WithLabelValues(state).Add(float64(n))
}
