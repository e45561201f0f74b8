// Package metrics holds the Prometheus instruments shared across the
// service. All instruments are registered on the default registry and
// exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncPasses counts completed fetch passes of the order sync job.
	SyncPasses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credo_sync_passes_total",
		Help: "Number of order sync passes that fetched the pending list.",
	})

	// SyncFetchFailures counts passes aborted because the external order
	// source was unreachable.
	SyncFetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credo_sync_fetch_failures_total",
		Help: "Number of sync passes aborted on an external fetch failure.",
	})

	// OrdersPersisted counts orders durably saved by the sync job.
	OrdersPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credo_orders_persisted_total",
		Help: "Number of orders persisted by the sync job.",
	})

	// OrdersSkipped counts orders skipped because they were already cached.
	OrdersSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credo_orders_skipped_total",
		Help: "Number of orders skipped by deduplication.",
	})

	// OrderSaveFailures counts per-order persistence failures. The batch
	// continues past these.
	OrderSaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "credo_order_save_failures_total",
		Help: "Number of orders the sync job failed to persist.",
	})

	// CreditDecisions counts loan analyses by outcome (approved/rejected).
	CreditDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "credo_credit_decisions_total",
		Help: "Number of credit analyses by outcome.",
	}, []string{"outcome"})
)
