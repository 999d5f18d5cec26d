package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrPlaceOrderWithCreditCheckCommandIsNotConstructed = errors.New(
	"PlaceOrderWithCreditCheckCommand must be created via NewPlaceOrderWithCreditCheckCommand constructor",
)

// PlaceOrderWithCreditCheckCommand places an order only if admission control
// accepts it against the customer's credit profile.
type PlaceOrderWithCreditCheckCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	items      []order.LineItem

	guard guard.ConstructorGuard
}

func NewPlaceOrderWithCreditCheckCommand(
	orderID kernel.UUID,
	customerID string,
	items []OrderItem,
) (PlaceOrderWithCreditCheckCommand, error) {
	cmd := PlaceOrderWithCreditCheckCommand{
		guard: guard.NewConstructorGuard(),
	}

	lineItems, itemsErr := toLineItems(items)
	if err := errors.Join(
		orderID.Validate(),
		validateCustomerID(customerID),
		itemsErr,
	); err != nil {
		return PlaceOrderWithCreditCheckCommand{}, err
	}

	cmd.orderID = orderID
	cmd.customerID = customerID
	cmd.items = lineItems
	return cmd, nil
}

func (c PlaceOrderWithCreditCheckCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderWithCreditCheckCommandIsNotConstructed)
}

func (c PlaceOrderWithCreditCheckCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderWithCreditCheckCommand) CustomerID() string {
	return c.customerID
}

func (c PlaceOrderWithCreditCheckCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}
