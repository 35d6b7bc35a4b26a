package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served.",
		},
		[]string{"route", "method", "status"},
	)
	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	uploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uploads_total",
			Help: "Total number of spreadsheet uploads by outcome.",
		},
		[]string{"status"},
	)
	uploadFileBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "upload_file_bytes",
			Help:    "Size of uploaded spreadsheet files in bytes.",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
		},
	)

	rateLimitHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_hits_total",
			Help: "Requests rejected by the per-IP rate limiter.",
		},
	)
)

func observeRequest(r *http.Request, status int, dur time.Duration) {
	route := routeLabel(r.URL.Path)
	httpRequestsTotal.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	httpRequestDurationSeconds.WithLabelValues(route, r.Method).Observe(dur.Seconds())
}

func observeUpload(status string, size int) {
	uploadsTotal.WithLabelValues(status).Inc()
	if size > 0 {
		uploadFileBytes.Observe(float64(size))
	}
}

func routeLabel(path string) string {
	switch {
	case path == "/":
		return "index"
	case path == "/upload":
		return "upload"
	case strings.HasPrefix(path, "/chart/"):
		return "chart"
	case strings.HasPrefix(path, "/download/"):
		return "download"
	case strings.HasPrefix(path, "/static/"):
		return "static"
	default:
		return "other"
	}
}
