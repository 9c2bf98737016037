package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	uploadsSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "po_client",
			Name:      "uploads_submitted_total",
			Help:      "Spreadsheets accepted into the upload queue.",
		},
		[]string{"vendor"},
	)

	uploadsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "po_client",
			Name:      "uploads_failed_total",
			Help:      "Queued uploads whose final attempt failed.",
		},
		[]string{"vendor"},
	)
)
