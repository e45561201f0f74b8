package order

import (
	"context"
	"log/slog"
	"time"

	"github.com/ricardomaia/credo/internal/metrics"
)

// manualApprovalThreshold is the order total above which processing parks the
// order for manual review instead of persisting it.
const manualApprovalThreshold = 10000

// SyncJob ingests pending orders from the external source, deduplicates them
// by id and persists them. Failures never propagate to the caller: a fetch
// failure aborts the pass, a save failure skips the order.
type SyncJob struct {
	source Source
	store  Store
	cache  Cache
	log    *slog.Logger
}

func NewSyncJob(source Source, store Store, cache Cache, log *slog.Logger) *SyncJob {
	return &SyncJob{
		source: source,
		store:  store,
		cache:  cache,
		log:    log,
	}
}

// Run performs one sync pass. The pass is aborted on a fetch failure; the
// next scheduled pass retries unconditionally. A cached id was already
// persisted by an earlier pass and is skipped. The cache claim happens
// before the save so two concurrent passes cannot both persist the same id;
// a failed save releases the claim so the order is retried later.
func (j *SyncJob) Run(ctx context.Context) {
	orders, err := j.source.FetchPending(ctx)
	if err != nil {
		metrics.SyncFetchFailures.Inc()
		j.log.Error("fetching pending orders", slog.String("error", err.Error()))

		return
	}

	metrics.SyncPasses.Inc()

	for _, o := range orders {
		claimed, err := j.cache.PutIfAbsent(o.ID, true)
		if err != nil {
			j.log.Error("caching order id", slog.String("order_id", o.ID), slog.String("error", err.Error()))
			continue
		}

		if !claimed {
			metrics.OrdersSkipped.Inc()
			continue
		}

		if err := j.store.Save(ctx, o); err != nil {
			j.cache.Remove(o.ID)
			metrics.OrderSaveFailures.Inc()
			j.log.Error("saving order", slog.String("order_id", o.ID), slog.String("error", err.Error()))

			continue
		}

		metrics.OrdersPersisted.Inc()
	}
}

// RunLoop schedules Run on a fixed interval until the context is cancelled.
func (j *SyncJob) RunLoop(ctx context.Context, interval time.Duration) {
	j.log.Info("order sync started", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.log.Info("order sync stopped")
			return
		case <-ticker.C:
			j.Run(ctx)
		}
	}
}

// ProcessOrder advances a single order through its lifecycle, independent of
// the fetch loop. Persistence failures are absorbed here: the order is left
// in status ERROR and the caller sees nothing.
func (j *SyncJob) ProcessOrder(ctx context.Context, o *Order) {
	if o == nil {
		j.log.Warn("attempted to process nil order")
		return
	}

	log := j.log.With(slog.String("order_id", o.ID))

	if o.Status == StatusCancelled {
		log.Info("skipping cancelled order")
		return
	}

	if o.Total() > manualApprovalThreshold {
		o.Status = StatusPendingApproval
		log.Info("order requires manual approval", slog.Float64("total", o.Total()))

		return
	}

	o.Status = StatusProcessing

	if err := j.store.Save(ctx, o); err != nil {
		// The in-memory transition stands; only the persist failed.
		o.Status = StatusError
		log.Error("saving order", slog.String("error", err.Error()))

		return
	}

	if err := j.cache.Put(o.ID, true); err != nil {
		log.Error("caching order id", slog.String("error", err.Error()))
	}

	log.Info("order processed")
}
