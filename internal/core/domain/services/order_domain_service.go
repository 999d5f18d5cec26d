package services

import (
	"ordering/internal/core/domain/model/order"
)

// OrderDomainService is the single seam transport and application code use to
// cancel orders, independent of the aggregate's own convenience methods.
type OrderDomainService struct {
	rule order.CancellationRule
}

func NewOrderDomainService() OrderDomainService {
	return OrderDomainService{}
}

// CancelOrder checks the cancellation rule and cancels o. The returned error is
// the one the aggregate itself would report.
func (s OrderDomainService) CancelOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := s.rule.Check(o); err != nil {
		return err
	}
	return o.Cancel()
}

// CanCancelOrder reports whether the cancellation rule allows cancelling o.
// An order not built through the order constructors is never cancellable.
func (s OrderDomainService) CanCancelOrder(o *order.Order) bool {
	if err := o.Validate(); err != nil {
		return false
	}
	return s.rule.IsSatisfiedBy(o)
}
