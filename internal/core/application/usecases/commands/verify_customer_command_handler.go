package commands

import (
	"context"
)

type VerifyCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewVerifyCustomerCommandHandler(uowFactory CustomerUoWFactory) VerifyCustomerCommandHandler {
	return VerifyCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle verifies the customer. Verifying an already verified customer
// succeeds without changes.
func (h *VerifyCustomerCommandHandler) Handle(ctx context.Context, cmd VerifyCustomerCommand) error {
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

	if c.IsVerified() {
		return nil
	}

	c.Verify()
	if err = customerRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
