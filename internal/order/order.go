package order

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending         Status = "PENDING"
	StatusProcessing      Status = "PROCESSING"
	StatusCompleted       Status = "COMPLETED"
	StatusCancelled       Status = "CANCELLED"
	StatusError           Status = "ERROR"
	StatusPendingApproval Status = "PENDING_APPROVAL"
	StatusApproved        Status = "APPROVED"
	StatusRejected        Status = "REJECTED"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled,
		StatusError, StatusPendingApproval, StatusApproved, StatusRejected:
		return true
	}

	return false
}

// Item is a single line of an order.
type Item struct {
	ID          string
	Name        string
	Price       float64
	Quantity    int
	Description string
}

// Subtotal is the item's contribution to the order total.
func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// Order is the aggregate synced from the external source. The item list and
// the derived total are kept private so the total can never go stale: every
// mutation recomputes it in the same call.
type Order struct {
	ID         string
	CustomerID string
	Status     Status

	items []Item
	total float64
}

func New(id, customerID string, status Status) *Order {
	return &Order{
		ID:         id,
		CustomerID: customerID,
		Status:     status,
	}
}

// Items returns a copy of the item list.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)

	return items
}

// Total is the sum of Subtotal over all items.
func (o *Order) Total() float64 {
	return o.total
}

func (o *Order) AddItem(item Item) {
	o.items = append(o.items, item)
	o.recalc()
}

// RemoveItem drops the first item with the given id and reports whether one
// was removed.
func (o *Order) RemoveItem(id string) bool {
	for i, item := range o.items {
		if item.ID == id {
			o.items = append(o.items[:i], o.items[i+1:]...)
			o.recalc()

			return true
		}
	}

	return false
}

// ReplaceItem swaps the first item with the given id for the replacement and
// reports whether one was found.
func (o *Order) ReplaceItem(id string, replacement Item) bool {
	for i, item := range o.items {
		if item.ID == id {
			o.items[i] = replacement
			o.recalc()

			return true
		}
	}

	return false
}

// SetItems replaces the whole item list.
func (o *Order) SetItems(items []Item) {
	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.recalc()
}

func (o *Order) recalc() {
	total := 0.0
	for _, item := range o.items {
		total += item.Subtotal()
	}

	o.total = total
}
