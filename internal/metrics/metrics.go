// Package metrics holds the Prometheus collectors of the sync client. All
// collectors are registered with the default registry through promauto and
// exposed by the optional metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncCycles counts finished sync cycles by result
	// ("idle", "offline", "superseded", "push_failed", "error").
	SyncCycles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocy_sync_cycles_total",
			Help: "Total number of sync cycles by result",
		},
		[]string{"result"},
	)

	SyncCycleDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "grocy_sync_cycle_duration_seconds",
			Help:    "Duration of sync cycles in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// EntityFetches counts snapshot downloads per entity type.
	EntityFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocy_sync_entity_fetches_total",
			Help: "Total number of entity snapshot downloads",
		},
		[]string{"entity"},
	)

	// EntityFetchesSkipped counts downloads skipped because the entity was
	// already current.
	EntityFetchesSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocy_sync_entity_fetches_skipped_total",
			Help: "Total number of entity downloads skipped by the change timestamp",
		},
		[]string{"entity"},
	)

	// QueueOperations counts queue operation outcomes
	// ("success", "failure", "ignored").
	QueueOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocy_sync_queue_operations_total",
			Help: "Total number of download queue operations by outcome",
		},
		[]string{"queue", "result"},
	)

	MutationsPushed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grocy_sync_mutations_pushed_total",
			Help: "Total number of pending local mutations pushed to the server",
		},
	)

	MutationsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grocy_sync_mutations_dropped_total",
			Help: "Total number of pending local mutations superseded by server changes",
		},
	)

	OrphansDeleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "grocy_sync_orphans_deleted_total",
			Help: "Total number of orphaned shopping list items deleted by tidy-up",
		},
	)

	MalformedRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "grocy_sync_malformed_records_total",
			Help: "Total number of server records skipped as malformed",
		},
		[]string{"entity"},
	)

	// Offline is 1 while the client considers the server unreachable.
	Offline = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "grocy_sync_offline",
			Help: "1 while the server is considered unreachable",
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "grocy_sync_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// SetOffline records the connectivity state.
func SetOffline(offline bool) {
	if offline {
		Offline.Set(1)
		return
	}
	Offline.Set(0)
}
