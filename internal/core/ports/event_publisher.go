package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
)

// EventPublisher receives domain events drained from aggregates. A failed
// Publish is returned to the caller and never retried here.
type EventPublisher interface {
	Publish(ctx context.Context, event kernel.DomainEvent) error
}

// OutboxMessage is a serialized domain event waiting to leave the service.
type OutboxMessage struct {
	ID          kernel.UUID
	EventName   string
	AggregateID string
	Payload     []byte
	OccurredOn  time.Time
}

// OutboxRepository stores serialized events inside the business transaction
// and hands them to the relay.
type OutboxRepository interface {
	EventPublisher

	// GetPending locks and returns up to limit unprocessed messages, oldest
	// first. Rows locked by another transaction are skipped.
	GetPending(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkProcessed flags messages as delivered.
	MarkProcessed(ctx context.Context, ids ...kernel.UUID) error
}

// MessagePublisher delivers outbox messages to a broker.
type MessagePublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
