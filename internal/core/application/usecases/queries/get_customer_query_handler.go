package queries

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

type customerRow struct {
	Email           string
	Name            string
	CreditLimit     decimal.Decimal
	IsVerified      bool
	RiskLevel       string
	CreatedAt       time.Time
	TotalOrders     int
	PendingExposure decimal.Decimal
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerView, error) {
	if err := query.Validate(); err != nil {
		return CustomerView{}, err
	}

	id := query.CustomerID()
	var row customerRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			c.email,
			c.name,
			c.credit_limit,
			c.is_verified,
			c.risk_level,
			c.created_at,
			COUNT(o.id) AS total_orders,
			COALESCE(SUM(o.total_amount) FILTER (WHERE o.status NOT IN (?, ?)), 0) AS pending_exposure
		FROM customers c
		LEFT JOIN orders o ON o.customer_id = c.id::text
		WHERE c.id = ?
		GROUP BY c.id
	`, order.Delivered.String(), order.Cancelled.String(), id.Bytes()).Scan(&row)
	if result.Error != nil {
		return CustomerView{}, result.Error
	}
	if result.RowsAffected == 0 {
		return CustomerView{}, errs.NewObjectNotFoundError("customer", id.String())
	}

	risk, err := customer.RiskLevelFromString(row.RiskLevel)
	if err != nil {
		return CustomerView{}, err
	}

	return CustomerView{
		ID:              id,
		Email:           row.Email,
		Name:            row.Name,
		CreditLimit:     row.CreditLimit,
		IsVerified:      row.IsVerified,
		RiskLevel:       risk,
		PendingExposure: row.PendingExposure,
		TotalOrders:     row.TotalOrders,
		CreatedAt:       row.CreatedAt.UTC(),
	}, nil
}
