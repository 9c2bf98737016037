package uploadqueue

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// queueDepth is only written by the shard's own worker.
var (
	submissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "po_client",
			Subsystem: "upload_queue",
			Name:      "submissions_total",
			Help:      "Upload jobs accepted for execution.",
		},
		[]string{"shard"},
	)

	queueFullTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "po_client",
			Subsystem: "upload_queue",
			Name:      "queue_full_total",
			Help:      "Submit calls rejected because the shard stayed full.",
		},
		[]string{"shard"},
	)

	failuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "po_client",
			Subsystem: "upload_queue",
			Name:      "failures_total",
			Help:      "Upload jobs that failed after their last attempt.",
		},
		[]string{"shard"},
	)

	runDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "po_client",
			Subsystem: "upload_queue",
			Name:      "run_duration_seconds",
			Help:      "Duration of a single upload attempt.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"shard"},
	)

	queueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "po_client",
			Subsystem: "upload_queue",
			Name:      "depth",
			Help:      "Jobs waiting in each shard.",
		},
		[]string{"shard"},
	)
)

func labelFor(i int) string { return strconv.Itoa(i) }
