// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// OutboxRelayJob runs every second. Each run executes a RelayOutboxCommand:
// it locks a batch of pending outbox messages, hands them to the configured
// message publisher (in-process bus, Kafka or RabbitMQ) and marks the sent
// ones processed. Failures are logged, counted and retried on the next tick.
//
// # Usage
//
//	relayJob, err := jobs.NewOutboxRelayJob(relayHandler, cfg.OutboxBatchSize, prometheus.DefaultRegisterer, logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(relayJob)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Metrics
//
// ordering_outbox_messages_published_total and ordering_outbox_relay_failures_total
// are exposed on /metrics.
package jobs
