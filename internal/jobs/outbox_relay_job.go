package jobs

import (
	"context"
	"log/slog"
	"sync"

	"ordering/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// OutboxRelayJob sends pending outbox messages to the broker every second.
type OutboxRelayJob struct {
	handler   commands.RelayOutboxCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
	metrics   *relayMetrics

	// running guards against overlapping ticks when a batch takes longer than a second.
	running sync.Mutex
}

func NewOutboxRelayJob(
	handler commands.RelayOutboxCommandHandler,
	batchSize int,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) (*OutboxRelayJob, error) {
	if batchSize <= 0 {
		batchSize = commands.DefaultOutboxBatchSize
	}

	metrics, err := newRelayMetrics(registerer)
	if err != nil {
		return nil, err
	}

	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
		metrics:   metrics,
	}, nil
}

// Start schedules the relay to run every second.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc("* * * * * *", func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// RunOnce relays one batch. A tick that finds the previous one still running is skipped.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	if !j.running.TryLock() {
		return
	}
	defer j.running.Unlock()

	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	j.metrics.published.Add(float64(result.Published))
	if err != nil {
		j.metrics.failures.Inc()
		j.logger.ErrorContext(ctx, "Outbox relay failed", "published", result.Published, "error", err)
		return
	}

	if result.Published > 0 {
		j.logger.DebugContext(ctx, "Outbox messages relayed", "published", result.Published)
	}
}

// Stop waits for a running batch to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
