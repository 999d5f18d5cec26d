package http_test

import (
	"context"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(
	ctx context.Context,
	cmd commands.PlaceOrderWithCreditCheckCommand,
) (commands.PlaceOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PlaceOrderResult), args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (commands.ChangeOrderStatusResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ChangeOrderStatusResult), args.Error(1)
}

type MockCreateCustomerHandler struct{ mock.Mock }

func (m *MockCreateCustomerHandler) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockVerifyCustomerHandler struct{ mock.Mock }

func (m *MockVerifyCustomerHandler) Handle(ctx context.Context, cmd commands.VerifyCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeCustomerRiskLevelHandler struct{ mock.Mock }

func (m *MockChangeCustomerRiskLevelHandler) Handle(ctx context.Context, cmd commands.ChangeCustomerRiskLevelCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.OrderView), args.Error(1)
}

type MockGetActiveOrdersHandler struct{ mock.Mock }

func (m *MockGetActiveOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetActiveOrdersQuery,
) ([]queries.OrderView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]queries.OrderView), args.Error(1)
}

type MockGetCustomerHandler struct{ mock.Mock }

func (m *MockGetCustomerHandler) Handle(
	ctx context.Context,
	query queries.GetCustomerQuery,
) (queries.CustomerView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CustomerView), args.Error(1)
}
