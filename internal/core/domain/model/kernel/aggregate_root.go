package kernel

// EventSource is implemented by aggregates that buffer domain events until
// they are drained by a dispatcher.
type EventSource interface {
	ID() UUID
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}

// AggregateRoot is embedded by aggregates to own their pending domain events.
// Events are kept in the order they were raised. The buffer is not
// synchronized: an aggregate is mutated by one operation at a time.
type AggregateRoot struct {
	domainEvents []DomainEvent
}

// RaiseDomainEvent appends an event to the buffer.
func (a *AggregateRoot) RaiseDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// DomainEvents returns a copy of the pending events in the order they were raised.
func (a *AggregateRoot) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(a.domainEvents))
	copy(events, a.domainEvents)
	return events
}

// ClearDomainEvents empties the buffer. Cleared events are never returned again.
func (a *AggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}
