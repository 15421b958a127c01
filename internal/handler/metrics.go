package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK            = "ok"
	outcomeBadRequest    = "bad_request"
	outcomeNotFound      = "not_found"
	outcomeInternalError = "internal_error"
)

var (
	guestOrderRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "guest_order_service",
			Subsystem: "http",
			Name:      "guest_order_requests_total",
			Help:      "Total number of guest order requests by outcome",
		},
		[]string{"outcome"},
	)

	guestOrderRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "guest_order_service",
			Subsystem: "http",
			Name:      "guest_order_request_duration_seconds",
			Help:      "Histogram of guest order request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	guestOrderRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "guest_order_service",
			Subsystem: "http",
			Name:      "guest_order_requests_in_progress",
			Help:      "Number of in-progress guest order requests",
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		guestOrderRequestTotal,
		guestOrderRequestDuration,
		guestOrderRequestsInProgress,
	)
}
