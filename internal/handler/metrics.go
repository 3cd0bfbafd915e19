package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	adjustmentsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "stock_consumer",
			Name:      "adjustments_processed_total",
			Help:      "Total number of successfully applied stock adjustments",
		},
		[]string{"operation"},
	)

	adjustmentsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "stock_consumer",
			Name:      "adjustments_failed_total",
			Help:      "Total number of stock adjustments that could not be applied",
		},
	)

	adjustmentsDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "stock_consumer",
			Name:      "adjustments_dlq_total",
			Help:      "Total number of stock adjustments written to DLQ",
		},
	)

	adjustmentsDuplicate = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "stock_consumer",
			Name:      "adjustments_duplicate_total",
			Help:      "Total number of redelivered stock adjustments skipped",
		},
	)

	commitErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "stock_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	adjustmentDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fulfillment",
			Subsystem: "stock_consumer",
			Name:      "adjustment_duration_seconds",
			Help:      "Histogram of stock adjustment processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
