// Package kernel provides the building blocks shared by every aggregate of the
// ordering domain.
//
// The package includes:
//   - UUID: a validated identifier for aggregates and events
//   - DomainEvent and BaseEvent: the contract and common fields of domain events
//   - AggregateRoot: the per-aggregate buffer of pending domain events
//   - EventSource: what a dispatcher needs from an aggregate to drain it
package kernel
