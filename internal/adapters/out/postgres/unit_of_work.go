// Package postgres provides the GORM-based Unit of Work. It keeps the list of
// aggregates written during a business transaction and, on commit, drains
// their domain events into the outbox table inside that same transaction.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    _ = uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx) // OrderCreated lands in outbox_messages
//
// Each UnitOfWork instance owns one transaction; goroutines must not share it.
// Repositories obtained without Begin write through the plain connection and
// their events stay buffered in the aggregates.
package postgres

import (
	"context"
	"log/slog"

	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/core/application/events"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// Models lists the DTOs that make up the schema, for AutoMigrate.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&outboxrepo.OutboxMessageDTO{},
	}
}

// GormUnitOfWorkFactory creates a fresh UnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create with the concrete type, for callers that need TrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:     f.db,
		logger: f.logger,
	}
}

// GormUnitOfWork coordinates one database transaction across the order,
// customer and outbox repositories.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	logger  *slog.Logger
	tracked []kernel.EventSource
}

// Begin starts the transaction. Calling it twice is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit writes the events of every tracked aggregate to the outbox, then
// commits. If the outbox write fails the transaction is rolled back, so state
// is never stored without its events.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	dispatcher := events.NewDomainEventDispatcher(outboxrepo.NewGormOutboxRepository(uow.tx), uow.logger)
	if err := dispatcher.DispatchEventsForAggregates(ctx, uow.tracked); err != nil {
		if rbErr := uow.tx.Rollback().Error; rbErr != nil {
			uow.logger.ErrorContext(ctx, "rollback after outbox failure", "error", rbErr)
		}
		uow.reset()
		return err
	}

	err := uow.tx.Commit().Error
	uow.reset()
	return err
}

// Rollback discards the transaction and forgets the tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// CreditLookup reads credit profiles under the transaction, locking the
// customer row until Commit or Rollback.
func (uow *GormUnitOfWork) CreditLookup() ports.CustomerCreditLookup {
	return customerrepo.NewCreditLookup(uow.conn())
}

// OutboxRepository is used by the relay job to read and acknowledge messages
// under the same transaction.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate is called by repositories after every successful write.
// An aggregate written twice is tracked once.
func (uow *GormUnitOfWork) TrackAggregate(aggregate kernel.EventSource) {
	for _, tracked := range uow.tracked {
		if tracked == aggregate {
			return
		}
	}
	uow.tracked = append(uow.tracked, aggregate)
}

// TrackedAggregates returns the aggregates written since Begin.
func (uow *GormUnitOfWork) TrackedAggregates() []kernel.EventSource {
	tracked := make([]kernel.EventSource, len(uow.tracked))
	copy(tracked, uow.tracked)
	return tracked
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.tracked = nil
}
