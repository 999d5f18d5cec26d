package order

import (
	"time"

	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	OrderCreatedEventName       = "OrderCreated"
	OrderStatusChangedEventName = "OrderStatusChanged"
)

// ItemSnapshot is the serializable form of a LineItem carried by events.
type ItemSnapshot struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrderCreated is raised once, when NewOrder builds a new order.
type OrderCreated struct {
	kernel.BaseEvent `json:"-"`

	OrderID     string          `json:"orderId"`
	CustomerID  string          `json:"customerId"`
	Items       []ItemSnapshot  `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (OrderCreated) EventName() string {
	return OrderCreatedEventName
}

// OrderStatusChanged is raised by every successful status change.
type OrderStatusChanged struct {
	kernel.BaseEvent `json:"-"`

	OrderID        string    `json:"orderId"`
	PreviousStatus string    `json:"previousStatus"`
	NewStatus      string    `json:"newStatus"`
	ChangedAt      time.Time `json:"changedAt"`
}

func (OrderStatusChanged) EventName() string {
	return OrderStatusChangedEventName
}

func newOrderCreated(o *Order) OrderCreated {
	snapshots := make([]ItemSnapshot, 0, len(o.items))
	for _, item := range o.items {
		snapshots = append(snapshots, ItemSnapshot{
			ProductID:   item.ProductID(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
		})
	}

	return OrderCreated{
		BaseEvent:   kernel.NewBaseEvent(o.id.String()),
		OrderID:     o.id.String(),
		CustomerID:  o.customerID,
		Items:       snapshots,
		TotalAmount: o.totalAmount,
	}
}

func newOrderStatusChanged(o *Order, previous string) OrderStatusChanged {
	return OrderStatusChanged{
		BaseEvent:      kernel.NewBaseEvent(o.id.String()),
		OrderID:        o.id.String(),
		PreviousStatus: previous,
		NewStatus:      o.status.String(),
		ChangedAt:      o.updatedAt,
	}
}
