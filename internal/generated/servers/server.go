// Package servers holds the HTTP contract of the ordering API: the models,
// the ServerInterface implemented by the http adapter, the echo route
// registration and the embedded OpenAPI document.
package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Create a pending order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// List orders that are neither delivered nor cancelled, oldest first
	// (GET /api/v1/orders/active)
	GetActiveOrders(ctx echo.Context) error
	// Place an order after a credit check
	// (POST /api/v1/orders/place)
	PlaceOrder(ctx echo.Context) error
	// Get an order with its items
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Move an order along its lifecycle
	// (PATCH /api/v1/orders/{orderId}/status)
	ChangeOrderStatus(ctx echo.Context, orderId OrderId) error
	// Register a customer
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error
	// Get a customer with order statistics
	// (GET /api/v1/customers/{customerId})
	GetCustomer(ctx echo.Context, customerId CustomerId) error
	// Mark a customer as verified
	// (POST /api/v1/customers/{customerId}/verify)
	VerifyCustomer(ctx echo.Context, customerId CustomerId) error
	// Assign the risk tier used for deposit calculation
	// (PATCH /api/v1/customers/{customerId}/risk-level)
	ChangeCustomerRiskLevel(ctx echo.Context, customerId CustomerId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetActiveOrders(ctx echo.Context) error {
	return w.Handler.GetActiveOrders(ctx)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeOrderStatus(ctx, orderId)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	customerId, err := bindUUIDPathParam(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.GetCustomer(ctx, customerId)
}

func (w *ServerInterfaceWrapper) VerifyCustomer(ctx echo.Context) error {
	customerId, err := bindUUIDPathParam(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.VerifyCustomer(ctx, customerId)
}

func (w *ServerInterfaceWrapper) ChangeCustomerRiskLevel(ctx echo.Context) error {
	customerId, err := bindUUIDPathParam(ctx, "customerId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeCustomerRiskLevel(ctx, customerId)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var value openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &value,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return value, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return value, nil
}

// EchoRouter is implemented by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/active", wrapper.GetActiveOrders)
	router.POST(baseURL+"/api/v1/orders/place", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId/status", wrapper.ChangeOrderStatus)
	router.POST(baseURL+"/api/v1/customers", wrapper.CreateCustomer)
	router.GET(baseURL+"/api/v1/customers/:customerId", wrapper.GetCustomer)
	router.POST(baseURL+"/api/v1/customers/:customerId/verify", wrapper.VerifyCustomer)
	router.PATCH(baseURL+"/api/v1/customers/:customerId/risk-level", wrapper.ChangeCustomerRiskLevel)
}
