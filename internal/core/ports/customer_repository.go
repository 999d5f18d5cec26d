package ports

import (
	"context"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	Add(ctx context.Context, aggregate *customer.Customer) error
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get returns the customer, or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail returns the customer registered with email, or an
	// errs.ObjectNotFoundError. Emails are compared in lower case.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}

// CustomerCreditLookup assembles the credit profile admission control needs.
// customerID is the customer reference carried by orders.
type CustomerCreditLookup interface {
	GetCreditProfile(ctx context.Context, customerID string) (customer.CreditProfile, error)
}
