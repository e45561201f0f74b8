package order_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardomaia/credo/internal/order"
)

func TestValidate(t *testing.T) {
	type testCase struct {
		name       string
		build      func() *order.Order
		wantReason string
	}

	tests := []testCase{
		{
			name: "Valid",
			build: func() *order.Order {
				o := order.New("ORD001", "CUST001", order.StatusPending)
				o.AddItem(order.Item{ID: "I1", Name: "Widget", Price: 10, Quantity: 1})

				return o
			},
		},
		{
			name: "EmptyCustomerID",
			build: func() *order.Order {
				o := order.New("ORD001", "", order.StatusPending)
				o.AddItem(order.Item{ID: "I1", Price: 10, Quantity: 1})

				return o
			},
			wantReason: "customer id is required",
		},
		{
			name: "NoItems",
			build: func() *order.Order {
				return order.New("ORD001", "CUST001", order.StatusPending)
			},
			wantReason: "order must have at least one item",
		},
		{
			name: "ZeroQuantity",
			build: func() *order.Order {
				o := order.New("ORD001", "CUST001", order.StatusPending)
				o.AddItem(order.Item{ID: "I1", Price: 10, Quantity: 0})

				return o
			},
			wantReason: "item quantity must be greater than 0",
		},
		{
			name: "NegativePrice",
			build: func() *order.Order {
				o := order.New("ORD001", "CUST001", order.StatusPending)
				o.AddItem(order.Item{ID: "I1", Price: -1, Quantity: 1})

				return o
			},
			wantReason: "item price cannot be negative",
		},
		{
			name: "FirstViolationWins",
			build: func() *order.Order {
				o := order.New("ORD001", "CUST001", order.StatusPending)
				o.AddItem(order.Item{ID: "I1", Price: 10, Quantity: 1})
				o.AddItem(order.Item{ID: "I2", Price: -1, Quantity: 1})
				o.AddItem(order.Item{ID: "I3", Price: 10, Quantity: 0})

				return o
			},
			// The scan reports the first offending item, I2.
			wantReason: "item price cannot be negative",
		},
		{
			name: "QuantityCheckedBeforePriceOnSameItem",
			build: func() *order.Order {
				o := order.New("ORD001", "CUST001", order.StatusPending)
				o.AddItem(order.Item{ID: "I1", Price: -1, Quantity: 0})

				return o
			},
			wantReason: "item quantity must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := order.Validate(tt.build())

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *order.ValidationError

			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantReason, vErr.Reason)
		})
	}
}
