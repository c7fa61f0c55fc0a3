package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total orders created",
		},
	)

	OrdersCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_completed_total",
			Help: "Total orders completed",
		},
	)

	OrderRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_rejections_total",
			Help: "Order requests rejected by a domain rule",
		},
		[]string{"reason"},
	)

	VouchersIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vouchers_issued_total",
			Help: "Total vouchers minted on order completion",
		},
	)

	OrderCompletionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_completion_duration_seconds",
			Help:    "Duration of the order completion transaction",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
	)
)

// Rejection reason labels.
const (
	ReasonInsufficientQuantity = "insufficient_quantity"
	ReasonAlreadyCompleted     = "already_completed"
	ReasonAlreadyCancelled     = "already_cancelled"
	ReasonRedundantTransition  = "redundant_transition"
	ReasonStateChanged         = "state_changed"
)
