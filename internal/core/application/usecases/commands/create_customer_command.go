package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerAlreadyExists = errors.New("customer already exists")
)

// CustomerAlreadyExistsError reports an email that is already registered.
type CustomerAlreadyExistsError struct {
	Email string
}

func (e *CustomerAlreadyExistsError) Error() string {
	return fmt.Sprintf("customer with email %s already exists", e.Email)
}

func (e *CustomerAlreadyExistsError) Unwrap() error {
	return ErrCustomerAlreadyExists
}

// CreateCustomerCommand registers a customer. A nil credit limit selects
// customer.DefaultCreditLimit.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	email       string
	name        string
	creditLimit *decimal.Decimal

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(
	customerID kernel.UUID,
	email, name string,
	creditLimit *decimal.Decimal,
) (CreateCustomerCommand, error) {
	var errList []error
	if err := customerID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if email == "" {
		errList = append(errList, customer.ErrEmailIsRequired)
	}
	if name == "" {
		errList = append(errList, customer.ErrNameIsRequired)
	}
	if err := errors.Join(errList...); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customerID:  customerID,
		email:       email,
		name:        name,
		creditLimit: creditLimit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) CreditLimit() *decimal.Decimal {
	return c.creditLimit
}
