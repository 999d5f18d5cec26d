package http

import (
	"context"
	"log/slog"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
}

type PlaceOrderHandler interface {
	Handle(ctx context.Context, cmd commands.PlaceOrderWithCreditCheckCommand) (commands.PlaceOrderResult, error)
}

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (commands.ChangeOrderStatusResult, error)
}

type CreateCustomerHandler interface {
	Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error
}

type VerifyCustomerHandler interface {
	Handle(ctx context.Context, cmd commands.VerifyCustomerCommand) error
}

type ChangeCustomerRiskLevelHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeCustomerRiskLevelCommand) error
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

type GetActiveOrdersHandler interface {
	Handle(ctx context.Context, query queries.GetActiveOrdersQuery) ([]queries.OrderView, error)
}

type GetCustomerHandler interface {
	Handle(ctx context.Context, query queries.GetCustomerQuery) (queries.CustomerView, error)
}

// Handlers groups the use cases the server delegates to.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	PlaceOrder        PlaceOrderHandler
	ChangeOrderStatus ChangeOrderStatusHandler
	CreateCustomer    CreateCustomerHandler
	VerifyCustomer    VerifyCustomerHandler
	ChangeRiskLevel   ChangeCustomerRiskLevelHandler
	GetOrder          GetOrderHandler
	GetActiveOrders   GetActiveOrdersHandler
	GetCustomer       GetCustomerHandler
}

// Server implements servers.ServerInterface. It only translates between the
// wire models and the application commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if ok, err := s.bind(ctx, &body); !ok {
		return err
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.CustomerId, toOrderItems(body.Items))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{OrderId: orderID.Bytes()})
}

// PlaceOrder handles POST /api/v1/orders/place. A rejected placement is not an
// error: it is answered with 422 and the placement result.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if ok, err := s.bind(ctx, &body); !ok {
		return err
	}

	cmd, err := commands.NewPlaceOrderWithCreditCheckCommand(kernel.NewUUID(), body.CustomerId, toOrderItems(body.Items))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(result.OrderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	status := http.StatusCreated
	if !result.Approved {
		status = http.StatusUnprocessableEntity
	}

	return ctx.JSON(status, servers.PlacementResult{
		OrderId:                orderID.Bytes(),
		TotalAmount:            result.TotalAmount,
		Approved:               result.Approved,
		RequiresManualApproval: result.RequiresManualApproval,
		RequiredDeposit:        result.RequiredDeposit,
		Message:                result.Message,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	views, err := s.handlers.GetActiveOrders.Handle(ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.StatusChangeRequest
	if ok, err := s.bind(ctx, &body); !ok {
		return err
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusChange{
		OrderId:        orderId,
		PreviousStatus: servers.OrderStatus(result.PreviousStatus),
		NewStatus:      servers.OrderStatus(result.NewStatus),
		UpdatedAt:      result.UpdatedAt,
	})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if ok, err := s.bind(ctx, &body); !ok {
		return err
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, body.Email, body.Name, body.CreditLimit)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CustomerCreated{CustomerId: customerID.Bytes()})
}

// GetCustomer handles GET /api/v1/customers/{customerId}.
func (s *Server) GetCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	id, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Customer{
		Id:              view.ID.Bytes(),
		Email:           view.Email,
		Name:            view.Name,
		CreditLimit:     view.CreditLimit,
		IsVerified:      view.IsVerified,
		RiskLevel:       servers.CustomerRiskLevel(view.RiskLevel.String()),
		PendingExposure: view.PendingExposure,
		TotalOrders:     view.TotalOrders,
		CreatedAt:       view.CreatedAt,
	})
}

// VerifyCustomer handles POST /api/v1/customers/{customerId}/verify.
func (s *Server) VerifyCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	id, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewVerifyCustomerCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.VerifyCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeCustomerRiskLevel handles PATCH /api/v1/customers/{customerId}/risk-level.
func (s *Server) ChangeCustomerRiskLevel(ctx echo.Context, customerId servers.CustomerId) error {
	var body servers.RiskLevelChangeRequest
	if ok, err := s.bind(ctx, &body); !ok {
		return err
	}

	id, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeCustomerRiskLevelCommand(id, string(body.RiskLevel))
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.ChangeRiskLevel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bind decodes and validates a request body. When it reports false the 400
// response has already been written.
func (s *Server) bind(ctx echo.Context, body any) (bool, error) {
	if err := ctx.Bind(body); err != nil {
		return false, ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if err := ctx.Validate(body); err != nil {
		return false, ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	return true, nil
}

// fail writes the error response for err.
func (s *Server) fail(ctx echo.Context, err error) error {
	status, message := mapError(err)
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

func toOrderItems(items []servers.NewOrderItem) []commands.OrderItem {
	result := make([]commands.OrderItem, len(items))
	for i, item := range items {
		result[i] = commands.OrderItem{
			ProductID:   item.ProductId,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}
	return result
}

func toOrder(view queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = servers.OrderItem{
			ProductId:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		}
	}

	return servers.Order{
		Id:          view.ID.Bytes(),
		CustomerId:  view.CustomerID,
		Items:       items,
		TotalAmount: view.TotalAmount,
		Status:      servers.OrderStatus(view.Status.String()),
		CreatedAt:   view.CreatedAt,
		UpdatedAt:   view.UpdatedAt,
	}
}
