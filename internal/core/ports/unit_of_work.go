package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command or job run.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Events raised by aggregates
// saved through its repositories are written to the outbox on Commit, in the
// same transaction as the state change.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit drains the events of every tracked aggregate into the outbox and
	// commits. Returns an error if no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Returns an error if none is active.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	CustomerRepository() CustomerRepository
	CreditLookup() CustomerCreditLookup
	OutboxRepository() OutboxRepository
}
