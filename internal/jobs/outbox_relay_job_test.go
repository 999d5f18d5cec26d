package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutbox struct {
	pending   []ports.OutboxMessage
	processed []kernel.UUID
}

func (f *fakeOutbox) Publish(context.Context, kernel.DomainEvent) error { return nil }

func (f *fakeOutbox) GetPending(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit < len(f.pending) {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutbox) MarkProcessed(_ context.Context, ids ...kernel.UUID) error {
	f.processed = append(f.processed, ids...)
	done := make(map[kernel.UUID]bool, len(ids))
	for _, id := range ids {
		done[id] = true
	}
	rest := f.pending[:0]
	for _, msg := range f.pending {
		if !done[msg.ID] {
			rest = append(rest, msg)
		}
	}
	f.pending = rest
	return nil
}

type fakeUoW struct{ outbox *fakeOutbox }

func (u fakeUoW) Begin(context.Context) error              { return nil }
func (u fakeUoW) Commit(context.Context) error             { return nil }
func (u fakeUoW) Rollback(context.Context) error           { return nil }
func (u fakeUoW) OutboxRepository() ports.OutboxRepository { return u.outbox }

type fakeUoWFactory struct{ outbox *fakeOutbox }

func (f fakeUoWFactory) Create() commands.OutboxUoW { return fakeUoW(f) }

type publisherFunc func(ctx context.Context, msg ports.OutboxMessage) error

func (p publisherFunc) Publish(ctx context.Context, msg ports.OutboxMessage) error { return p(ctx, msg) }

func newMessages(n int) []ports.OutboxMessage {
	msgs := make([]ports.OutboxMessage, 0, n)
	for range n {
		msgs = append(msgs, ports.OutboxMessage{ID: kernel.NewUUID(), EventName: "OrderCreated"})
	}
	return msgs
}

func TestOutboxRelayJob_RunOnce(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("should relay one batch per run and count it", func(t *testing.T) {
		outbox := &fakeOutbox{pending: newMessages(5)}
		var sent int
		handler := commands.NewRelayOutboxCommandHandler(fakeUoWFactory{outbox}, publisherFunc(func(context.Context, ports.OutboxMessage) error {
			sent++
			return nil
		}))
		registry := prometheus.NewRegistry()
		job, err := jobs.NewOutboxRelayJob(handler, 3, registry, logger)
		require.NoError(t, err)

		job.RunOnce(context.Background())
		assert.Equal(t, 3, sent)
		assert.Len(t, outbox.pending, 2)

		job.RunOnce(context.Background())
		assert.Equal(t, 5, sent)
		assert.Empty(t, outbox.pending)

		count, err := testutil.GatherAndCount(registry, "ordering_outbox_messages_published_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("should count failures and keep messages pending", func(t *testing.T) {
		outbox := &fakeOutbox{pending: newMessages(2)}
		handler := commands.NewRelayOutboxCommandHandler(fakeUoWFactory{outbox}, publisherFunc(func(context.Context, ports.OutboxMessage) error {
			return errors.New("broker down")
		}))
		registry := prometheus.NewRegistry()
		job, err := jobs.NewOutboxRelayJob(handler, 10, registry, logger)
		require.NoError(t, err)

		job.RunOnce(context.Background())

		assert.Len(t, outbox.pending, 2)
		assert.Empty(t, outbox.processed)
		families, err := registry.Gather()
		require.NoError(t, err)
		for _, family := range families {
			if family.GetName() == "ordering_outbox_relay_failures_total" {
				assert.InDelta(t, 1, family.GetMetric()[0].GetCounter().GetValue(), 0)
			}
		}
	})

	t.Run("should share counters between jobs on one registry", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		handler := commands.NewRelayOutboxCommandHandler(fakeUoWFactory{&fakeOutbox{}}, publisherFunc(func(context.Context, ports.OutboxMessage) error {
			return nil
		}))

		_, err := jobs.NewOutboxRelayJob(handler, 1, registry, logger)
		require.NoError(t, err)
		_, err = jobs.NewOutboxRelayJob(handler, 1, registry, logger)
		require.NoError(t, err)
	})
}

func TestOutboxRelayJob_StartStop(t *testing.T) {
	t.Run("should start and stop through the job manager", func(t *testing.T) {
		handler := commands.NewRelayOutboxCommandHandler(fakeUoWFactory{&fakeOutbox{}}, publisherFunc(func(context.Context, ports.OutboxMessage) error {
			return nil
		}))
		job, err := jobs.NewOutboxRelayJob(handler, 0, nil, slog.New(slog.DiscardHandler))
		require.NoError(t, err)
		manager := jobs.NewJobManager(job)

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})
}
