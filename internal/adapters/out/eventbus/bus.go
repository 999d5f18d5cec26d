// Package eventbus delivers outbox messages in process, to handlers
// subscribed by event name. It is the default relay target when no broker is
// configured.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"ordering/internal/core/ports"
)

// Handler reacts to one delivered message.
type Handler func(ctx context.Context, msg ports.OutboxMessage) error

// Bus implements ports.MessagePublisher. Subscribe and Publish may be called
// from different goroutines.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger.With("component", "EventBus"),
	}
}

// Subscribe registers handler for eventName. Handlers run in subscription order.
func (b *Bus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish runs the handlers of msg.EventName and stops at the first failure.
// A message nobody subscribed to is dropped.
func (b *Bus) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[msg.EventName]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.logger.DebugContext(ctx, "no handlers", "event", msg.EventName, "messageId", msg.ID.String())
		return nil
	}

	for _, handler := range handlers {
		if err := handler(ctx, msg); err != nil {
			return fmt.Errorf("handle %s %s: %w", msg.EventName, msg.ID.String(), err)
		}
	}

	return nil
}
