package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricardomaia/credo/internal/order"
)

func TestOrder_TotalTracksItems(t *testing.T) {
	o := order.New("ORD001", "CUST001", order.StatusPending)

	assert.Equal(t, 0.0, o.Total())

	o.AddItem(order.Item{ID: "I1", Name: "Widget", Price: 10, Quantity: 3})
	assert.Equal(t, 30.0, o.Total())

	o.AddItem(order.Item{ID: "I2", Name: "Gadget", Price: 2.5, Quantity: 4})
	assert.Equal(t, 40.0, o.Total())

	assert.True(t, o.RemoveItem("I1"))
	assert.Equal(t, 10.0, o.Total())

	// Removing an unknown item changes nothing.
	assert.False(t, o.RemoveItem("I9"))
	assert.Equal(t, 10.0, o.Total())

	o.SetItems([]order.Item{
		{ID: "I3", Price: 100, Quantity: 2},
		{ID: "I4", Price: 1, Quantity: 1},
	})
	assert.Equal(t, 201.0, o.Total())

	o.SetItems(nil)
	assert.Equal(t, 0.0, o.Total())
}

func TestOrder_ReplaceItem(t *testing.T) {
	o := order.New("ORD001", "CUST001", order.StatusPending)
	o.AddItem(order.Item{ID: "I1", Name: "Widget", Price: 10, Quantity: 3})
	o.AddItem(order.Item{ID: "I2", Name: "Gadget", Price: 5, Quantity: 1})

	assert.True(t, o.ReplaceItem("I1", order.Item{ID: "I1", Name: "Widget XL", Price: 20, Quantity: 2}))
	assert.Equal(t, 45.0, o.Total())
	assert.Equal(t, "Widget XL", o.Items()[0].Name)

	assert.False(t, o.ReplaceItem("I9", order.Item{ID: "I9", Price: 1, Quantity: 1}))
	assert.Equal(t, 45.0, o.Total())
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	o := order.New("ORD001", "CUST001", order.StatusPending)
	o.AddItem(order.Item{ID: "I1", Price: 10, Quantity: 1})

	items := o.Items()
	items[0].Price = 9999

	// Mutating the returned slice must not bypass the total invariant.
	assert.Equal(t, 10.0, o.Total())
	assert.Equal(t, 10.0, o.Items()[0].Price)
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range []order.Status{
		order.StatusPending, order.StatusProcessing, order.StatusCompleted,
		order.StatusCancelled, order.StatusError, order.StatusPendingApproval,
		order.StatusApproved, order.StatusRejected,
	} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, order.Status("SHIPPED").Valid())
	assert.False(t, order.Status("").Valid())
}
