package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders placed.",
	})

	ordersRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "orders",
		Name:      "rejected_total",
		Help:      "Total number of order placements refused, by error code.",
	}, []string{"code"})

	orderStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "orders",
		Name:      "status_changes_total",
		Help:      "Total number of applied status transitions.",
	}, []string{"to"})

	stockReserved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "inventory",
		Name:      "units_reserved_total",
		Help:      "Total number of stock units reserved.",
	})

	stockReleased = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "inventory",
		Name:      "units_released_total",
		Help:      "Total number of stock units released back.",
	})

	compensationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "orders",
		Name:      "compensation_failures_total",
		Help:      "Total number of reservations that could not be undone.",
	})

	orderCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "orders",
		Name:      "cache_lookups_total",
		Help:      "Order cache lookups by result.",
	}, []string{"result"})
)
