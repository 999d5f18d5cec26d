package commands

import (
	"context"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

const (
	MessageOrderPlaced               = "Order placed successfully"
	MessageOrderPlacedManualApproval = "Order placed but requires manual approval"
)

// PlaceOrderResult is the admission outcome. Rejected orders carry the
// admission reason as Message, a zero deposit and are not persisted.
type PlaceOrderResult struct {
	OrderID                string
	TotalAmount            decimal.Decimal
	Approved               bool
	RequiresManualApproval bool
	RequiredDeposit        decimal.Decimal
	Message                string
}

// PlaceOrderWithCreditCheckCommandHandler gates order creation on the
// customer's credit. The order is built first so admission control sees the
// same total that would be stored.
type PlaceOrderWithCreditCheckCommandHandler struct {
	uowFactory PlacementUoWFactory
	placement  services.OrderPlacementService
	logger     *slog.Logger
}

func NewPlaceOrderWithCreditCheckCommandHandler(
	uowFactory PlacementUoWFactory,
	placement services.OrderPlacementService,
	logger *slog.Logger,
) PlaceOrderWithCreditCheckCommandHandler {
	return PlaceOrderWithCreditCheckCommandHandler{
		uowFactory: uowFactory,
		placement:  placement,
		logger:     logger.With("component", "PlaceOrderWithCreditCheckCommandHandler"),
	}
}

func (h *PlaceOrderWithCreditCheckCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderWithCreditCheckCommand,
) (PlaceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PlaceOrderResult{}, err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.Items())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	profile, err := uow.CreditLookup().GetCreditProfile(ctx, cmd.CustomerID())
	if err != nil {
		return PlaceOrderResult{}, err
	}

	admission := h.placement.Evaluate(o, profile)
	if !admission.Allowed {
		h.logger.InfoContext(ctx, "order rejected by admission control",
			"orderId", o.ID().String(),
			"customerId", o.CustomerID(),
			"reason", admission.Reason,
		)
		return PlaceOrderResult{
			OrderID:         o.ID().String(),
			TotalAmount:     o.TotalAmount(),
			RequiredDeposit: decimal.Zero,
			Message:         admission.Reason,
		}, nil
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return PlaceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PlaceOrderResult{}, err
	}

	message := MessageOrderPlaced
	if admission.RequiresManualApproval {
		message = MessageOrderPlacedManualApproval
	}

	return PlaceOrderResult{
		OrderID:                o.ID().String(),
		TotalAmount:            o.TotalAmount(),
		Approved:               true,
		RequiresManualApproval: admission.RequiresManualApproval,
		RequiredDeposit:        admission.RequiredDeposit,
		Message:                message,
	}, nil
}
