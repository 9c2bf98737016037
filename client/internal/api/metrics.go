package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "po_client",
			Name:      "requests_total",
			Help:      "API calls by operation and status class (2xx, 4xx, error, ...).",
		},
		[]string{"op", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "po_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of a single API round trip.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

func observe(op, status string, d time.Duration) {
	requestsTotal.WithLabelValues(op, status).Inc()
	requestDuration.WithLabelValues(op).Observe(d.Seconds())
}
