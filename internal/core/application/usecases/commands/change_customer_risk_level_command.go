package commands

import (
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrChangeCustomerRiskLevelCommandIsNotConstructed = errors.New(
	"ChangeCustomerRiskLevelCommand must be created via NewChangeCustomerRiskLevelCommand constructor",
)

// ChangeCustomerRiskLevelCommand assigns a customer the risk tier used for
// deposit calculation.
type ChangeCustomerRiskLevelCommand struct {
	customerID kernel.UUID
	riskLevel  customer.RiskLevel

	guard guard.ConstructorGuard
}

// NewChangeCustomerRiskLevelCommand accepts LOW, MEDIUM or HIGH.
func NewChangeCustomerRiskLevelCommand(customerID kernel.UUID, riskLevel string) (ChangeCustomerRiskLevelCommand, error) {
	level, levelErr := customer.RiskLevelFromString(riskLevel)
	if err := errors.Join(customerID.Validate(), levelErr); err != nil {
		return ChangeCustomerRiskLevelCommand{}, err
	}

	return ChangeCustomerRiskLevelCommand{
		customerID: customerID,
		riskLevel:  level,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeCustomerRiskLevelCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomerRiskLevelCommandIsNotConstructed)
}

func (c ChangeCustomerRiskLevelCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c ChangeCustomerRiskLevelCommand) RiskLevel() customer.RiskLevel {
	return c.riskLevel
}
