// Package ports defines the contracts between the core and its adapters:
// repositories, the unit of work, the credit lookup and event publishing.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and updatedAt of an existing order. Items
	// and the total are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns the order with its items, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive returns orders that are neither delivered nor cancelled,
	// oldest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)
}
