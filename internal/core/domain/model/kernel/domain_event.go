package kernel

import "time"

// DomainEvent is an immutable record of something that happened inside an aggregate.
// Concrete events embed BaseEvent and add their payload.
type DomainEvent interface {
	EventID() UUID
	EventName() string
	AggregateID() string
	OccurredOn() time.Time
}

// BaseEvent carries the fields every domain event shares.
type BaseEvent struct {
	eventID     UUID
	aggregateID string
	occurredOn  time.Time
}

// NewBaseEvent stamps a fresh event ID and the current UTC time.
func NewBaseEvent(aggregateID string) BaseEvent {
	return BaseEvent{
		eventID:     NewUUID(),
		aggregateID: aggregateID,
		occurredOn:  time.Now().UTC(),
	}
}

func (e BaseEvent) EventID() UUID {
	return e.eventID
}

func (e BaseEvent) AggregateID() string {
	return e.aggregateID
}

func (e BaseEvent) OccurredOn() time.Time {
	return e.occurredOn
}
