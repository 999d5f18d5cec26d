package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
)

// ChangeOrderStatusResult describes an applied status change.
type ChangeOrderStatusResult struct {
	OrderID        string
	PreviousStatus string
	NewStatus      string
	UpdatedAt      time.Time
}

// ChangeOrderStatusCommandHandler applies status changes. Cancellation goes
// through the OrderDomainService, every other target through the aggregate.
// A missing order yields an errs.ObjectNotFoundError; lifecycle violations are
// returned as the aggregate reports them.
type ChangeOrderStatusCommandHandler struct {
	uowFactory    OrderUoWFactory
	domainService services.OrderDomainService
}

func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	domainService services.OrderDomainService,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		domainService: domainService,
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	previous := o.Status()
	if cmd.NewStatus() == order.Cancelled {
		err = h.domainService.CancelOrder(o)
	} else {
		err = o.ChangeStatus(cmd.NewStatus())
	}
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	return ChangeOrderStatusResult{
		OrderID:        o.ID().String(),
		PreviousStatus: previous.String(),
		NewStatus:      o.Status().String(),
		UpdatedAt:      o.UpdatedAt(),
	}, nil
}
