package order

// CancellationRule decides whether an order may still be cancelled: every
// valid status except Delivered and Cancelled allows it. An order without a
// valid status, such as the zero Order, is refused with
// CannotCancelReasonUnknown. IsSatisfiedBy and Check
// share cancellationBlocker, so the predicate and the reported reason cannot
// disagree.
type CancellationRule struct{}

// IsSatisfiedBy reports whether o can be cancelled.
func (CancellationRule) IsSatisfiedBy(o *Order) bool {
	return cancellationBlocker(o.Status()) == nil
}

// Check returns a *CannotCancelError naming the reason o cannot be cancelled,
// or nil.
func (CancellationRule) Check(o *Order) error {
	return cancellationBlocker(o.Status())
}

func cancellationBlocker(s Status) error {
	switch {
	case s.Validate() != nil:
		return &CannotCancelError{Reason: CannotCancelReasonUnknown}
	case s.IsDelivered():
		return &CannotCancelError{Reason: CannotCancelReasonDelivered}
	case s.IsCancelled():
		return &CannotCancelError{Reason: CannotCancelReasonCancelled}
	default:
		return nil
	}
}
