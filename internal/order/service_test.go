package order_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomaia/credo/internal/order"
)

func TestService_Create(t *testing.T) {
	t.Run("ValidOrderIsSaved", func(t *testing.T) {
		store := newFakeStore()
		svc := order.NewService(store, slog.New(slog.DiscardHandler))

		err := svc.Create(context.Background(), pendingOrder("ORD001", 100))

		require.NoError(t, err)
		assert.Equal(t, 1, store.saved["ORD001"])
	})

	t.Run("InvalidOrderNeverReachesStore", func(t *testing.T) {
		store := newFakeStore()
		svc := order.NewService(store, slog.New(slog.DiscardHandler))

		o := order.New("ORD002", "", order.StatusPending)
		err := svc.Create(context.Background(), o)

		var vErr *order.ValidationError

		require.ErrorAs(t, err, &vErr)
		assert.Zero(t, store.saveCalls)
	})

	t.Run("SaveFailurePropagates", func(t *testing.T) {
		store := newFakeStore()
		store.failIDs["ORD003"] = true
		svc := order.NewService(store, slog.New(slog.DiscardHandler))

		err := svc.Create(context.Background(), pendingOrder("ORD003", 100))

		assert.Error(t, err)
	})
}
