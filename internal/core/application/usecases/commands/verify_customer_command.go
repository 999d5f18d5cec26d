package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrVerifyCustomerCommandIsNotConstructed = errors.New(
	"VerifyCustomerCommand must be created via NewVerifyCustomerCommand constructor",
)

// VerifyCustomerCommand marks a customer's identity as checked, lifting the
// unverified order ceiling.
type VerifyCustomerCommand struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewVerifyCustomerCommand(customerID kernel.UUID) (VerifyCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return VerifyCustomerCommand{}, err
	}
	return VerifyCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c VerifyCustomerCommand) Validate() error {
	return c.guard.Validate(ErrVerifyCustomerCommandIsNotConstructed)
}

func (c VerifyCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}
