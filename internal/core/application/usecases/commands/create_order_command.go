package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers an order without a credit check.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, []OrderItem{
//	    {ProductID: "sku-1", ProductName: "Keyboard", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	items      []order.LineItem

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the id, the customer reference and every
// line; at least one line is required.
func NewCreateOrderCommand(orderID kernel.UUID, customerID string, items []OrderItem) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	lineItems, itemsErr := toLineItems(items)
	if err := errors.Join(
		cmd.setOrderID(orderID),
		validateCustomerID(customerID),
		itemsErr,
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customerID = customerID
	cmd.items = lineItems
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the validated line items.
func (c CreateOrderCommand) Items() []order.LineItem {
	items := make([]order.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
