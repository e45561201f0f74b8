package order

import "errors"

var (
	// ErrNotFound is returned by stores when no order has the given id.
	ErrNotFound = errors.New("order not found")

	// ErrTimeout is returned by the external order source when it is
	// unreachable. The sync job recovers from it by aborting the pass.
	ErrTimeout = errors.New("external order source timeout")
)

// ValidationError is a domain rule violation on an order. It is a distinct,
// catchable condition; callers match it with errors.As.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}
