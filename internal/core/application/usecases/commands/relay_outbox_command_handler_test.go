package commands_test

import (
	"context"
	"errors"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type relayFixture struct {
	uow       *MockOutboxUoW
	outbox    *MockOutboxRepository
	publisher *MockMessagePublisher
	handler   commands.RelayOutboxCommandHandler
}

func newRelayFixture() *relayFixture {
	f := &relayFixture{
		uow:       new(MockOutboxUoW),
		outbox:    new(MockOutboxRepository),
		publisher: new(MockMessagePublisher),
	}
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(f.uow)
	f.uow.On("Begin", mock.Anything).Return(nil)
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("OutboxRepository").Return(f.outbox)
	f.handler = commands.NewRelayOutboxCommandHandler(factory, f.publisher)
	return f
}

func pendingMessages(n int) []ports.OutboxMessage {
	msgs := make([]ports.OutboxMessage, 0, n)
	for range n {
		msgs = append(msgs, ports.OutboxMessage{ID: kernel.NewUUID(), EventName: "OrderCreated"})
	}
	return msgs
}

func TestNewRelayOutboxCommand(t *testing.T) {
	t.Run("should keep the batch size", func(t *testing.T) {
		cmd, err := commands.NewRelayOutboxCommand(25)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, 25, cmd.BatchSize())
	})

	t.Run("should reject a non positive batch size", func(t *testing.T) {
		_, err := commands.NewRelayOutboxCommand(0)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a command not built by the constructor", func(t *testing.T) {
		assert.ErrorIs(t, commands.RelayOutboxCommand{}.Validate(), commands.ErrRelayOutboxCommandIsNotConstructed)
	})
}

func TestRelayOutboxCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)

	t.Run("should publish in order and mark everything processed", func(t *testing.T) {
		f := newRelayFixture()
		msgs := pendingMessages(3)
		f.outbox.On("GetPending", ctx, 10).Return(msgs, nil)
		var order []kernel.UUID
		f.publisher.On("Publish", ctx, mock.Anything).Run(func(args mock.Arguments) {
			order = append(order, args.Get(1).(ports.OutboxMessage).ID)
		}).Return(nil)
		f.outbox.On("MarkProcessed", ctx, []kernel.UUID{msgs[0].ID, msgs[1].ID, msgs[2].ID}).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		result, err := f.handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, commands.RelayOutboxResult{Published: 3}, result)
		assert.Equal(t, []kernel.UUID{msgs[0].ID, msgs[1].ID, msgs[2].ID}, order)
		f.outbox.AssertExpectations(t)
		f.uow.AssertExpectations(t)
	})

	t.Run("should do nothing when the outbox is empty", func(t *testing.T) {
		f := newRelayFixture()
		f.outbox.On("GetPending", ctx, 10).Return([]ports.OutboxMessage{}, nil)

		result, err := f.handler.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Zero(t, result.Published)
		f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should stop at the first failure and keep what was sent", func(t *testing.T) {
		f := newRelayFixture()
		msgs := pendingMessages(3)
		boom := errors.New("broker down")
		f.outbox.On("GetPending", ctx, 10).Return(msgs, nil)
		f.publisher.On("Publish", ctx, msgs[0]).Return(nil).Once()
		f.publisher.On("Publish", ctx, msgs[1]).Return(boom).Once()
		f.outbox.On("MarkProcessed", ctx, []kernel.UUID{msgs[0].ID}).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()

		result, err := f.handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, boom)
		assert.Equal(t, commands.RelayOutboxResult{Published: 1, Failed: true}, result)
		f.publisher.AssertNotCalled(t, "Publish", ctx, msgs[2])
		f.outbox.AssertExpectations(t)
	})

	t.Run("should not commit when the first message fails", func(t *testing.T) {
		f := newRelayFixture()
		msgs := pendingMessages(2)
		boom := errors.New("broker down")
		f.outbox.On("GetPending", ctx, 10).Return(msgs, nil)
		f.publisher.On("Publish", ctx, msgs[0]).Return(boom).Once()

		result, err := f.handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, boom)
		assert.True(t, result.Failed)
		f.outbox.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should return load errors", func(t *testing.T) {
		f := newRelayFixture()
		boom := errors.New("connection reset")
		f.outbox.On("GetPending", ctx, 10).Return(nil, boom)

		_, err := f.handler.Handle(ctx, cmd)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("should reject an invalid command", func(t *testing.T) {
		f := newRelayFixture()

		_, err := f.handler.Handle(ctx, commands.RelayOutboxCommand{})

		assert.ErrorIs(t, err, commands.ErrRelayOutboxCommandIsNotConstructed)
	})
}
