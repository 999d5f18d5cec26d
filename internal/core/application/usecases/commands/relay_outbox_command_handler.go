package commands

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"
)

// RelayOutboxResult reports one relay run. Failed is set when a message could
// not be published; it and everything after it stay pending.
type RelayOutboxResult struct {
	Published int
	Failed    bool
}

type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.MessagePublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.MessagePublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes pending messages oldest first. The batch is locked for the
// duration of the run, so concurrent relays never send the same message.
// Publishing stops at the first failure to keep per-aggregate order; the
// messages sent before it are still marked processed. The publish error is
// returned alongside the result.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (RelayOutboxResult, error) {
	if err := cmd.Validate(); err != nil {
		return RelayOutboxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.OutboxRepository()
	pending, err := outbox.GetPending(ctx, cmd.BatchSize())
	if err != nil {
		return RelayOutboxResult{}, err
	}

	if len(pending) == 0 {
		return RelayOutboxResult{}, nil
	}

	published := make([]kernel.UUID, 0, len(pending))
	var publishErr error
	for _, msg := range pending {
		if publishErr = h.publisher.Publish(ctx, msg); publishErr != nil {
			break
		}
		published = append(published, msg.ID)
	}

	result := RelayOutboxResult{Published: len(published), Failed: publishErr != nil}
	if len(published) == 0 {
		return result, publishErr
	}

	if err = outbox.MarkProcessed(ctx, published...); err != nil {
		return RelayOutboxResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RelayOutboxResult{}, err
	}

	return result, publishErr
}
