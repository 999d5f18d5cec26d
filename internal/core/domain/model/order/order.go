package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root of the ordering domain. All status changes go
// through its methods, which enforce the lifecycle and buffer one domain event
// per successful mutation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a customer ID
//   - totalAmount equals the sum of item subtotals at creation and is never recomputed
//   - Items are never modified after creation
//   - status changes only through the transition table of Status
//   - Can only be created through NewOrder or RestoreOrder
//
// An Order is not safe for concurrent mutation; callers serialize access.
type Order struct {
	kernel.AggregateRoot

	id          kernel.UUID
	customerID  string
	items       []LineItem
	totalAmount decimal.Decimal
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a Pending order, computes its total and raises OrderCreated.
//
// An empty item list is accepted here: rejecting it is the job of the command
// and request validation in front of the domain.
//
// Example:
//
//	item, _ := order.NewLineItem("sku-1", "Keyboard", 2, decimal.NewFromInt(100))
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{item})
//	if err != nil {
//	    // invalid id, customer or item
//	}
func NewOrder(id kernel.UUID, customerID string, items []LineItem) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        NewPendingStatus(),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = sumSubtotals(o.items)
	o.RaiseDomainEvent(newOrderCreated(o))

	return o, nil
}

// RestoreOrder rebuilds an order loaded from persistence. No events are raised
// and the stored total is kept as is.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	items []LineItem,
	totalAmount decimal.Decimal,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		totalAmount:   totalAmount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order lines in their original order.
func (o *Order) Items() []LineItem {
	items := make([]LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt is bumped on every status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to newStatus.
//
// Checks run in this order, the first failure is returned:
//  1. Cancelled target: the CancellationRule (*CannotCancelError), so a
//     Delivered order reports "already delivered"
//  2. Cancelled order: ErrOrderAlreadyCancelled, whatever the target
//  3. Transition table: *InvalidTransitionError
//
// On success updatedAt is bumped and OrderStatusChanged is raised.
func (o *Order) ChangeStatus(newStatus Status) error {
	if newStatus.IsCancelled() {
		if err := (CancellationRule{}).Check(o); err != nil {
			return err
		}
	}

	if o.status.IsCancelled() {
		return ErrOrderAlreadyCancelled
	}

	if !o.status.CanTransitionTo(newStatus) {
		return &InvalidTransitionError{Current: o.status, Requested: newStatus}
	}

	previous := o.status.String()
	o.status = newStatus
	o.updatedAt = time.Now().UTC()
	o.RaiseDomainEvent(newOrderStatusChanged(o, previous))

	return nil
}

// Cancel moves the order to Cancelled. The cancellation rule is evaluated once,
// inside ChangeStatus, so the error is the same as ChangeStatus(Cancelled).
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

// Confirm moves a Pending order to Confirmed.
func (o *Order) Confirm() error {
	return o.ChangeStatus(Confirmed)
}

// CanBeCancelled is the non-failing form of the cancellation rule.
func (o *Order) CanBeCancelled() bool {
	return CancellationRule{}.IsSatisfiedBy(o)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func sumSubtotals(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
