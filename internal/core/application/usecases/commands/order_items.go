package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemsAreRequired is returned for an order request without line items.
	ErrItemsAreRequired     = errors.New("order must contain at least one item")
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// OrderItem is one requested product line as received from a client.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// toLineItems validates requested lines. An empty list is rejected here since
// the aggregate itself accepts it.
func toLineItems(items []OrderItem) ([]order.LineItem, error) {
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	lineItems := make([]order.LineItem, 0, len(items))
	var errList []error
	for i, item := range items {
		lineItem, err := order.NewLineItem(item.ProductID, item.ProductName, item.Quantity, item.UnitPrice)
		if err != nil {
			errList = append(errList, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		lineItems = append(lineItems, lineItem)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return lineItems, nil
}

func validateCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}
	return nil
}
