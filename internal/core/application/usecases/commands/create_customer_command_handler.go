package commands

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers with unique emails.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{uowFactory: uowFactory}
}

// Handle returns a *CustomerAlreadyExistsError when the email is taken.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := customer.NewCustomer(cmd.CustomerID(), cmd.Email(), cmd.Name(), cmd.CreditLimit())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	_, err = customerRepo.GetByEmail(ctx, c.Email())
	switch {
	case err == nil:
		return &CustomerAlreadyExistsError{Email: c.Email()}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = customerRepo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
