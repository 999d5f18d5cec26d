// Package kafka relays outbox messages to a Kafka topic with segmentio/kafka-go.
// Messages are keyed by aggregate ID so the events of one order stay ordered
// within a partition.
package kafka

import (
	"context"
	"fmt"
	"strings"

	"ordering/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const (
	HeaderEventName = "event-name"
	HeaderMessageID = "message-id"
)

// messageWriter is the subset of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.MessagePublisher.
type Publisher struct {
	writer messageWriter
}

// NewWriter builds a writer for a comma separated broker list.
func NewWriter(brokersCSV, topic string) (*kafka.Writer, error) {
	brokers := ParseBrokers(brokersCSV)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers in %q", brokersCSV)
	}

	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}, nil
}

func NewPublisher(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.AggregateID),
		Value: msg.Payload,
		Time:  msg.OccurredOn,
		Headers: []kafka.Header{
			{Key: HeaderEventName, Value: []byte(msg.EventName)},
			{Key: HeaderMessageID, Value: []byte(msg.ID.String())},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka: write %s: %w", msg.ID.String(), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// ParseBrokers splits "host1:9092, host2:9092" and drops empty entries.
func ParseBrokers(brokersCSV string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
