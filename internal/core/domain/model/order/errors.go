package order

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrInvalidTransition     = errors.New("invalid order status transition")
	ErrOrderAlreadyCancelled = errors.New("cannot modify an already cancelled order")
	ErrCannotCancel          = errors.New("order cannot be cancelled")
)

// Reasons carried by CannotCancelError.
const (
	CannotCancelReasonDelivered = "already delivered"
	CannotCancelReasonCancelled = "already cancelled"
	CannotCancelReasonUnknown   = "unknown reason"
)

// InvalidTransitionError reports a move that is not in the lifecycle table.
type InvalidTransitionError struct {
	Current   Status
	Requested Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CannotCancelError reports why the cancellation rule rejected an order.
type CannotCancelError struct {
	Reason string
}

func (e *CannotCancelError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCannotCancel, e.Reason)
}

func (e *CannotCancelError) Unwrap() error {
	return ErrCannotCancel
}
