package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// RegisterLoggingHandlers subscribes a structured log line for every event
// the service emits.
func RegisterLoggingHandlers(bus *Bus, logger *slog.Logger) {
	logger = logger.With("component", "EventLog")

	bus.Subscribe(order.OrderCreatedEventName, func(ctx context.Context, msg ports.OutboxMessage) error {
		var e order.OrderCreated
		if err := json.Unmarshal(msg.Payload, &e); err != nil {
			return err
		}
		logger.InfoContext(ctx, "order created",
			"orderId", e.OrderID,
			"customerId", e.CustomerID,
			"items", len(e.Items),
			"totalAmount", e.TotalAmount.String(),
		)
		return nil
	})

	bus.Subscribe(order.OrderStatusChangedEventName, func(ctx context.Context, msg ports.OutboxMessage) error {
		var e order.OrderStatusChanged
		if err := json.Unmarshal(msg.Payload, &e); err != nil {
			return err
		}
		logger.InfoContext(ctx, "order status changed",
			"orderId", e.OrderID,
			"from", e.PreviousStatus,
			"to", e.NewStatus,
			"changedAt", e.ChangedAt,
		)
		return nil
	})

	bus.Subscribe(customer.CustomerCreatedEventName, func(ctx context.Context, msg ports.OutboxMessage) error {
		var e customer.CustomerCreated
		if err := json.Unmarshal(msg.Payload, &e); err != nil {
			return err
		}
		logger.InfoContext(ctx, "customer created",
			"customerId", e.CustomerID,
			"email", e.Email,
			"creditLimit", e.CreditLimit.String(),
		)
		return nil
	})
}
