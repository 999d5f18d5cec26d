// Package commands contains the use cases that change state. Every command
// follows the same steps: constructor validation, a unit of work transaction,
// domain calls, persistence. Domain events are drained into the outbox by the
// unit of work on commit.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides the customer repository bound to the transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW is used by commands that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreditLookupFactory provides the credit lookup bound to the transaction.
	CreditLookupFactory interface {
		CreditLookup() ports.CustomerCreditLookup
	}

	// PlacementUoW reads the credit profile and stores the order in one
	// transaction, so the profile cannot change before the order is written.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		CreditLookupFactory
	}

	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// CustomerUoW is used by commands that only touch customers.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OutboxRepoFactory provides the outbox bound to the transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OutboxUoW is used by the relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
