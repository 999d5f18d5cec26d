package commands

import (
	"context"
)

type ChangeCustomerRiskLevelCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewChangeCustomerRiskLevelCommandHandler(uowFactory CustomerUoWFactory) ChangeCustomerRiskLevelCommandHandler {
	return ChangeCustomerRiskLevelCommandHandler{uowFactory: uowFactory}
}

// Handle stores the new risk tier. Assigning the current tier writes nothing.
func (h *ChangeCustomerRiskLevelCommandHandler) Handle(ctx context.Context, cmd ChangeCustomerRiskLevelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	c, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if c.RiskLevel() == cmd.RiskLevel() {
		return nil
	}

	if err = c.ChangeRiskLevel(cmd.RiskLevel()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
