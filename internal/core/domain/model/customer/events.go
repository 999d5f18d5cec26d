package customer

import (
	"ordering/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const CustomerCreatedEventName = "CustomerCreated"

// CustomerCreated is raised when NewCustomer registers a customer.
type CustomerCreated struct {
	kernel.BaseEvent `json:"-"`

	CustomerID  string          `json:"customerId"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	CreditLimit decimal.Decimal `json:"creditLimit"`
}

func (CustomerCreated) EventName() string {
	return CustomerCreatedEventName
}
