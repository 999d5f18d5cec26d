// Package rabbitmq relays outbox messages to a durable RabbitMQ queue.
package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const dialAttempts = 10

// ErrNotAcknowledged is returned when the broker nacks a published message.
var ErrNotAcknowledged = errors.New("rabbitmq: broker did not acknowledge the message")

// Confirmation resolves once the broker acks or nacks a publishing.
type Confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// Channel publishes to a queue on a channel in confirm mode.
type Channel interface {
	Publish(ctx context.Context, queue string, msg amqp.Publishing) (Confirmation, error)
	Close() error
}

type confirmChannel struct {
	ch *amqp.Channel
}

func (c confirmChannel) Publish(ctx context.Context, queue string, msg amqp.Publishing) (Confirmation, error) {
	confirmation, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", queue, false, false, msg)
	if err != nil {
		return nil, err
	}
	if confirmation == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return confirmation, nil
}

func (c confirmChannel) Close() error {
	return c.ch.Close()
}

// Publisher implements ports.MessagePublisher over the default exchange.
type Publisher struct {
	conn    *amqp.Connection
	channel Channel
	queue   string
}

// Dial connects, retrying while the broker starts, and declares queue as durable.
func Dial(ctx context.Context, url, queue string, logger *slog.Logger) (*Publisher, error) {
	var (
		conn *amqp.Connection
		err  error
	)
	for attempt := 1; attempt <= dialAttempts; attempt++ {
		if conn, err = amqp.Dial(url); err == nil {
			break
		}
		logger.WarnContext(ctx, "rabbitmq not reachable, retrying", "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(2 * time.Second):
		}
	}
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: connect: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare queue %s: %w", queue, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: enable publisher confirms: %w", err)
	}

	p := NewPublisher(confirmChannel{ch: ch}, queue)
	p.conn = conn
	return p, nil
}

func NewPublisher(ch Channel, queue string) *Publisher {
	return &Publisher{channel: ch, queue: queue}
}

// Publish sends msg as a persistent message and waits for the broker to
// confirm it, so the outbox row is only marked processed once the broker owns
// the message. The outbox ID is the AMQP MessageId so consumers can
// deduplicate redeliveries.
func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	confirmation, err := p.channel.Publish(ctx, p.queue, amqp.Publishing{
		MessageId:    msg.ID.String(),
		Type:         msg.EventName,
		ContentType:  "application/json",
		Timestamp:    msg.OccurredOn,
		DeliveryMode: amqp.Persistent,
		Headers:      amqp.Table{"aggregate-id": msg.AggregateID},
		Body:         msg.Payload,
	})
	if err != nil {
		return fmt.Errorf("rabbitmq: publish %s: %w", msg.ID.String(), err)
	}

	acked, err := confirmation.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("rabbitmq: confirm %s: %w", msg.ID.String(), err)
	}
	if !acked {
		return fmt.Errorf("%w: %s", ErrNotAcknowledged, msg.ID.String())
	}
	return nil
}

func (p *Publisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		if connErr := p.conn.Close(); err == nil {
			err = connErr
		}
	}
	return err
}
