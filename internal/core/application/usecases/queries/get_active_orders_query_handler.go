package queries

import (
	"context"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns active orders oldest first. An empty result is an empty slice.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readOrders(ctx, h.db, `
		SELECT
			id,
			customer_id,
			total_amount,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE status NOT IN (?, ?)
		ORDER BY created_at, id
	`, order.Delivered.String(), order.Cancelled.String())
}
