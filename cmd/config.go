package cmd

import (
	"fmt"
	"strconv"
)

// Supported values of Config.EventBroker.
const (
	EventBrokerInProcess = "inprocess"
	EventBrokerKafka     = "kafka"
	EventBrokerRabbitMQ  = "rabbitmq"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// EventBroker selects where the outbox relay publishes; empty means inprocess.
	EventBroker           string
	KafkaBrokers          string
	KafkaOrderEventsTopic string
	RabbitMQURL           string
	RabbitMQQueue         string
	OutboxBatchSize       int
}

// ParseOutboxBatchSize reads OUTBOX_BATCH_SIZE; an empty value selects the default.
func ParseOutboxBatchSize(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	size, err := strconv.Atoi(raw)
	if err != nil || size <= 0 {
		return 0, fmt.Errorf("OUTBOX_BATCH_SIZE must be a positive integer, got %q", raw)
	}
	return size, nil
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// Validate checks the broker specific settings.
func (c Config) Validate() error {
	switch c.EventBroker {
	case "", EventBrokerInProcess:
	case EventBrokerKafka:
		if c.KafkaBrokers == "" || c.KafkaOrderEventsTopic == "" {
			return fmt.Errorf("kafka broker requires KAFKA_BROKERS and KAFKA_ORDER_EVENTS_TOPIC")
		}
	case EventBrokerRabbitMQ:
		if c.RabbitMQURL == "" || c.RabbitMQQueue == "" {
			return fmt.Errorf("rabbitmq broker requires RABBITMQ_URL and RABBITMQ_QUEUE")
		}
	default:
		return fmt.Errorf("unknown EVENT_BROKER %q", c.EventBroker)
	}
	return nil
}
