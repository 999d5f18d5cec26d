package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New("GetCustomerQuery must be created via NewGetCustomerQuery constructor")

type GetCustomerQuery struct {
	customerID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerQuery{}, err
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerView is a customer with the order statistics admission control uses.
type CustomerView struct {
	ID              kernel.UUID
	Email           string
	Name            string
	CreditLimit     decimal.Decimal
	IsVerified      bool
	RiskLevel       customer.RiskLevel
	PendingExposure decimal.Decimal
	TotalOrders     int
	CreatedAt       time.Time
}
