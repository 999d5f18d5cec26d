package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// readOrders runs an orders SELECT of id, customer_id, total_amount, status,
// created_at, updated_at and attaches the items of every row found.
// Row order is kept.
func readOrders(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderView, error) {
	views, ids, err := readOrderRows(ctx, db, query, args...)
	if err != nil || len(ids) == 0 {
		return views, err
	}

	items, err := readItems(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if orderItems, ok := items[views[i].ID.Bytes()]; ok {
			views[i].Items = orderItems
		}
	}

	return views, nil
}

func readOrderRows(ctx context.Context, db *gorm.DB, query string, args ...any) ([]OrderView, []uuid.UUID, error) {
	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			customerID string
			total      decimal.Decimal
			status     string
			createdAt  time.Time
			updatedAt  time.Time
		)
		if err = rows.Scan(&id, &customerID, &total, &status, &createdAt, &updatedAt); err != nil {
			return nil, nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		parsedStatus, statusErr := order.StatusFromString(status)
		if statusErr != nil {
			return nil, nil, statusErr
		}

		ids = append(ids, id)
		views = append(views, OrderView{
			ID:          orderID,
			CustomerID:  customerID,
			Items:       make([]OrderItemView, 0),
			TotalAmount: total,
			Status:      parsedStatus,
			CreatedAt:   createdAt.UTC(),
			UpdatedAt:   updatedAt.UTC(),
		})
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return views, ids, nil
}

func readItems(ctx context.Context, db *gorm.DB, orderIDs []uuid.UUID) (map[uuid.UUID][]OrderItemView, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			product_id,
			product_name,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[uuid.UUID][]OrderItemView, len(orderIDs))
	for rows.Next() {
		var (
			orderID uuid.UUID
			item    OrderItemView
		)
		if err = rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items[orderID] = append(items[orderID], item)
	}

	return items, rows.Err()
}
