package order

// Validation failure reasons, stable across callers.
const (
	reasonCustomerRequired = "customer id is required"
	reasonNoItems          = "order must have at least one item"
	reasonBadQuantity      = "item quantity must be greater than 0"
	reasonNegativePrice    = "item price cannot be negative"
)

// Validate checks the domain rules for an order and returns a
// *ValidationError for the first violation found: customer id, then item
// list presence, then quantity and price per item in stored order. Passing
// validation says nothing about persistence.
func Validate(o *Order) error {
	if o.CustomerID == "" {
		return &ValidationError{Reason: reasonCustomerRequired}
	}

	if len(o.items) == 0 {
		return &ValidationError{Reason: reasonNoItems}
	}

	for _, item := range o.items {
		if item.Quantity <= 0 {
			return &ValidationError{Reason: reasonBadQuantity}
		}

		if item.Price < 0 {
			return &ValidationError{Reason: reasonNegativePrice}
		}
	}

	return nil
}
