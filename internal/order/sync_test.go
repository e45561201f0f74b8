package order_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomaia/credo/internal/order"
	"github.com/ricardomaia/credo/internal/order/cache"
)

// fakeSource returns a canned fetch result.
type fakeSource struct {
	orders   []*order.Order
	fetchErr error
}

func (f *fakeSource) FetchPending(ctx context.Context) ([]*order.Order, error) {
	return f.orders, f.fetchErr
}

func (f *fakeSource) GetByID(ctx context.Context, id string) (*order.Order, error) {
	return nil, order.ErrNotFound
}

func (f *fakeSource) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	return nil
}

// fakeStore records saves and can be told to fail specific ids.
type fakeStore struct {
	saved     map[string]int
	failIDs   map[string]bool
	saveCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		saved:   map[string]int{},
		failIDs: map[string]bool{},
	}
}

func (f *fakeStore) Save(ctx context.Context, o *order.Order) error {
	f.saveCalls++

	if f.failIDs[o.ID] {
		return fmt.Errorf("saving order: %w", errors.New("backend failure"))
	}

	f.saved[o.ID]++

	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (*order.Order, error) {
	return nil, order.ErrNotFound
}

func (f *fakeStore) UpdateStatus(ctx context.Context, id string, status order.Status) error {
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeStore) ListByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	return nil, nil
}

func pendingOrder(id string, total float64) *order.Order {
	o := order.New(id, "CUST-"+id, order.StatusPending)
	o.AddItem(order.Item{ID: id + "-I1", Name: "item", Price: total, Quantity: 1})

	return o
}

func newJob(source order.Source, store order.Store, c order.Cache) *order.SyncJob {
	return order.NewSyncJob(source, store, c, slog.New(slog.DiscardHandler))
}

func TestSyncJob_Run_PersistsEachOrderOnce(t *testing.T) {
	source := &fakeSource{orders: []*order.Order{
		pendingOrder("ORD001", 100),
		pendingOrder("ORD002", 200),
	}}
	store := newFakeStore()
	c := cache.New()

	job := newJob(source, store, c)

	// Two passes over an unchanged fetch result persist each order once.
	job.Run(context.Background())
	job.Run(context.Background())

	assert.Equal(t, 1, store.saved["ORD001"])
	assert.Equal(t, 1, store.saved["ORD002"])
	assert.True(t, c.Contains("ORD001"))
	assert.True(t, c.Contains("ORD002"))
}

func TestSyncJob_Run_FetchFailureAbortsPass(t *testing.T) {
	source := &fakeSource{fetchErr: fmt.Errorf("fetch pending: %w", order.ErrTimeout)}
	store := newFakeStore()
	c := cache.New()

	newJob(source, store, c).Run(context.Background())

	assert.Zero(t, store.saveCalls)
	assert.True(t, c.IsEmpty())
}

func TestSyncJob_Run_SaveFailureLeavesOrderUncached(t *testing.T) {
	source := &fakeSource{orders: []*order.Order{
		pendingOrder("ORD001", 100),
		pendingOrder("ORD002", 200),
		pendingOrder("ORD003", 300),
	}}
	store := newFakeStore()
	store.failIDs["ORD002"] = true
	c := cache.New()

	job := newJob(source, store, c)
	job.Run(context.Background())

	// One failure never aborts the batch.
	assert.Equal(t, 1, store.saved["ORD001"])
	assert.Equal(t, 1, store.saved["ORD003"])

	// The failed order is not cached, so the next pass retries it.
	assert.False(t, c.Contains("ORD002"))

	store.failIDs["ORD002"] = false
	job.Run(context.Background())

	assert.Equal(t, 1, store.saved["ORD002"])
	assert.Equal(t, 1, store.saved["ORD001"])
}

func TestSyncJob_ProcessOrder(t *testing.T) {
	type testCase struct {
		name          string
		build         func() *order.Order
		failSave      bool
		wantStatus    order.Status
		wantSaveCalls int
		wantCached    bool
	}

	tests := []testCase{
		{
			name:          "NilOrderIsNoop",
			build:         func() *order.Order { return nil },
			wantSaveCalls: 0,
		},
		{
			name: "CancelledIsTerminal",
			build: func() *order.Order {
				return pendingOrderWithStatus("ORD001", 500, order.StatusCancelled)
			},
			wantStatus:    order.StatusCancelled,
			wantSaveCalls: 0,
		},
		{
			name: "LargeOrderParkedForApproval",
			build: func() *order.Order {
				return pendingOrder("ORD002", 15000)
			},
			wantStatus:    order.StatusPendingApproval,
			wantSaveCalls: 0,
			wantCached:    false,
		},
		{
			name: "SmallOrderProcessedAndPersisted",
			build: func() *order.Order {
				return pendingOrder("ORD003", 500)
			},
			wantStatus:    order.StatusProcessing,
			wantSaveCalls: 1,
			wantCached:    true,
		},
		{
			name: "ThresholdIsExclusive",
			build: func() *order.Order {
				return pendingOrder("ORD004", 10000)
			},
			wantStatus:    order.StatusProcessing,
			wantSaveCalls: 1,
			wantCached:    true,
		},
		{
			name: "SaveFailureSetsError",
			build: func() *order.Order {
				return pendingOrder("ORD005", 500)
			},
			failSave:      true,
			wantStatus:    order.StatusError,
			wantSaveCalls: 1,
			wantCached:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			c := cache.New()
			job := newJob(&fakeSource{}, store, c)

			o := tt.build()
			if o != nil && tt.failSave {
				store.failIDs[o.ID] = true
			}

			job.ProcessOrder(context.Background(), o)

			assert.Equal(t, tt.wantSaveCalls, store.saveCalls)

			if o == nil {
				return
			}

			require.NotNil(t, o)
			assert.Equal(t, tt.wantStatus, o.Status)
			assert.Equal(t, tt.wantCached, c.Contains(o.ID))
		})
	}
}

func pendingOrderWithStatus(id string, total float64, status order.Status) *order.Order {
	o := pendingOrder(id, total)
	o.Status = status

	return o
}
