// Package events moves domain events from aggregates to an EventPublisher.
package events

import (
	"context"
	"fmt"
	"log/slog"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// DomainEventDispatcher drains the event buffers of aggregates into a
// publisher. It pulls events from the aggregate rather than being pushed to,
// so ordering is decided by the aggregate alone.
type DomainEventDispatcher struct {
	publisher ports.EventPublisher
	logger    *slog.Logger
}

func NewDomainEventDispatcher(publisher ports.EventPublisher, logger *slog.Logger) DomainEventDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return DomainEventDispatcher{
		publisher: publisher,
		logger:    logger.With("component", "DomainEventDispatcher"),
	}
}

// DispatchEventsForAggregate publishes the buffered events of aggregate in the
// order they were raised, then clears the buffer. On the first publish error
// it stops and returns that error; the buffer is left intact so nothing is
// silently dropped.
func (d DomainEventDispatcher) DispatchEventsForAggregate(ctx context.Context, aggregate kernel.EventSource) error {
	pending := aggregate.DomainEvents()
	if len(pending) == 0 {
		return nil
	}

	for _, event := range pending {
		if err := d.publisher.Publish(ctx, event); err != nil {
			return fmt.Errorf("publish %s for aggregate %s: %w", event.EventName(), event.AggregateID(), err)
		}
		d.logger.DebugContext(ctx, "domain event published",
			"event", event.EventName(),
			"eventId", event.EventID().String(),
			"aggregateId", event.AggregateID(),
		)
	}

	aggregate.ClearDomainEvents()
	return nil
}

// DispatchEventsForAggregates dispatches each aggregate in turn. Order is kept
// per aggregate only.
func (d DomainEventDispatcher) DispatchEventsForAggregates(ctx context.Context, aggregates []kernel.EventSource) error {
	for _, aggregate := range aggregates {
		if err := d.DispatchEventsForAggregate(ctx, aggregate); err != nil {
			return err
		}
	}
	return nil
}
