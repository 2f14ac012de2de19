package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PollCyclesTotal counts reconciliation cycles by network type and result
	PollCyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_tracker_poll_cycles_total",
			Help: "Total number of reconciliation cycles",
		},
		[]string{"network_type", "result"},
	)

	// PollCycleDuration tracks how long a full cycle takes
	PollCycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_tracker_poll_cycle_duration_seconds",
			Help:    "Reconciliation cycle duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"network_type"},
	)

	// RecordsByStatus tracks the last observed record count per status
	RecordsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bridge_tracker_records",
			Help: "Number of tracked records by kind and status",
		},
		[]string{"network_type", "kind", "status"},
	)

	// NewlyObservedTotal counts records first seen through the history feed
	NewlyObservedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_tracker_newly_observed_total",
			Help: "Total number of records first observed from the history feed",
		},
		[]string{"network_type", "kind"},
	)

	// QuarantinedTotal counts feed records rejected at ingestion
	QuarantinedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_tracker_feed_quarantined_total",
			Help: "Total number of history feed records that failed validation",
		},
		[]string{"reason"},
	)

	// ResolverCallsTotal counts chain status resolutions by kind and outcome
	ResolverCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_tracker_resolver_calls_total",
			Help: "Total number of chain status resolutions",
		},
		[]string{"kind", "outcome"},
	)

	// StaleResponsesTotal counts cycle results dropped after an identity switch
	StaleResponsesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bridge_tracker_stale_responses_total",
			Help: "Total number of poll results discarded because the identity changed",
		},
	)

	// RetriesTotal counts retry attempts by operation
	RetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_tracker_retries_total",
			Help: "Total number of retries after network errors",
		},
		[]string{"operation"},
	)

	// FeeEstimatesTotal counts fee estimations by result
	FeeEstimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_tracker_fee_estimates_total",
			Help: "Total number of retryable fee estimations",
		},
		[]string{"result"},
	)

	// ClaimsTotal counts claim attempts by outcome
	ClaimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_tracker_claims_total",
			Help: "Total number of withdrawal claim attempts",
		},
		[]string{"outcome"},
	)

	// GasUsed tracks gas used by claim transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bridge_tracker_gas_used",
			Help:    "Gas used by submitted transactions",
			Buckets: []float64{50000, 100000, 200000, 300000, 500000, 1000000},
		},
		[]string{"operation"},
	)

	// ErrorsTotal counts errors by type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bridge_tracker_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
