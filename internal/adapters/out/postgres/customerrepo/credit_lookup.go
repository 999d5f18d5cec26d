package customerrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreditLookup implements ports.CustomerCreditLookup. The profile is read
// from the customers row plus aggregates over the customer's orders. The
// customers row is read FOR UPDATE, so inside a transaction concurrent
// placements for one customer see each other's pending exposure.
type CreditLookup struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCreditLookup(db *gorm.DB) *CreditLookup {
	return &CreditLookup{
		db:  db,
		now: time.Now,
	}
}

type orderStats struct {
	TotalOrders     int
	PendingExposure decimal.Decimal
}

// GetCreditProfile returns an errs.ObjectNotFoundError when customerID does
// not name a registered customer.
func (l *CreditLookup) GetCreditProfile(ctx context.Context, customerID string) (customer.CreditProfile, error) {
	id, err := kernel.UUIDFromString(customerID)
	if err != nil {
		return customer.CreditProfile{}, errs.NewObjectNotFoundErrorWithCause("customer", customerID, err)
	}

	var dto CustomerDTO
	err = l.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.CreditProfile{}, errs.NewObjectNotFoundError("customer", customerID)
		}
		return customer.CreditProfile{}, err
	}

	c, err := toDomain(dto)
	if err != nil {
		return customer.CreditProfile{}, err
	}

	var stats orderStats
	err = l.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) AS total_orders,
		            COALESCE(SUM(total_amount) FILTER (WHERE status NOT IN (?, ?)), 0) AS pending_exposure
		       FROM orders
		      WHERE customer_id = ?`,
			order.Delivered.String(), order.Cancelled.String(), customerID).
		Scan(&stats).Error
	if err != nil {
		return customer.CreditProfile{}, err
	}

	return customer.CreditProfile{
		CreditLimit:     c.CreditLimit(),
		PendingExposure: stats.PendingExposure,
		IsVerified:      c.IsVerified(),
		RiskLevel:       c.RiskLevel(),
		TotalOrders:     stats.TotalOrders,
		AccountAgeDays:  c.AccountAgeDays(l.now().UTC()),
	}, nil
}
