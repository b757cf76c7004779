package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lookup outcomes
const (
	OutcomeCacheHit     = "cache_hit"
	OutcomeResolved     = "resolved"
	OutcomeNotFound     = "not_found"
	OutcomeResolveError = "resolve_error"
)

// Side-effect operations
const (
	OperationPersist = "persist"
	OperationHistory = "history"
)

var (
	// LookupsTotal counts per-hash lookups by outcome
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lime_lookups_total",
			Help: "Total number of transaction hash lookups",
		},
		[]string{"outcome"},
	)

	// SideEffectFailures counts swallowed persist and history write failures
	SideEffectFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lime_side_effect_failures_total",
			Help: "Total number of failed record or history writes",
		},
		[]string{"operation"},
	)

	// BatchDuration tracks batch resolution time
	BatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lime_batch_duration_seconds",
			Help:    "Batch resolution duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// BatchSize tracks the number of distinct hashes per batch
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lime_batch_size",
			Help:    "Distinct hashes per resolution batch",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	// TokensIssued counts token issuance attempts by status
	TokensIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lime_tokens_issued_total",
			Help: "Total number of identity token issuance attempts",
		},
		[]string{"status"},
	)
)
