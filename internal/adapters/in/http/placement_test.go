package http_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/generated/servers"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCreditLookup struct {
	profile customer.CreditProfile
}

func (l fixedCreditLookup) GetCreditProfile(context.Context, string) (customer.CreditProfile, error) {
	return l.profile, nil
}

type memoryOrderRepository struct {
	ports.OrderRepository
	added []*order.Order
}

func (r *memoryOrderRepository) Add(_ context.Context, o *order.Order) error {
	r.added = append(r.added, o)
	return nil
}

type memoryPlacementUoW struct {
	orders *memoryOrderRepository
	lookup fixedCreditLookup
}

func (u *memoryPlacementUoW) Begin(context.Context) error    { return nil }
func (u *memoryPlacementUoW) Commit(context.Context) error   { return nil }
func (u *memoryPlacementUoW) Rollback(context.Context) error { return nil }

func (u *memoryPlacementUoW) OrderRepository() ports.OrderRepository { return u.orders }

func (u *memoryPlacementUoW) CreditLookup() ports.CustomerCreditLookup { return u.lookup }

func newPlacementAPI(t *testing.T, profile customer.CreditProfile) (*memoryOrderRepository, *testAPI) {
	t.Helper()
	orders := &memoryOrderRepository{}
	uow := &memoryPlacementUoW{orders: orders, lookup: fixedCreditLookup{profile: profile}}
	logger := slog.New(slog.DiscardHandler)

	placeOrder := commands.NewPlaceOrderWithCreditCheckCommandHandler(
		placementUoWFactory(func() commands.PlacementUoW { return uow }),
		services.NewOrderPlacementService(),
		logger,
	)
	server := httpin.NewServer(httpin.Handlers{PlaceOrder: &placeOrder}, logger)

	e, err := httpin.NewRouter(server, httpin.RouterOptions{Registerer: prometheus.NewRegistry(), Logger: logger})
	require.NoError(t, err)
	return orders, &testAPI{e: e}
}

type placementUoWFactory func() commands.PlacementUoW

func (f placementUoWFactory) Create() commands.PlacementUoW { return f() }

func TestPlaceOrder_DepositFollowsCustomerRiskLevel(t *testing.T) {
	const body = `{
		"customerId": "customer-1",
		"items": [{"productId": "sku-1", "productName": "Server", "quantity": 1, "unitPrice": "1000"}]
	}`

	tests := []struct {
		name        string
		risk        customer.RiskLevel
		totalOrders int
		deposit     string
	}{
		{name: "should ask a new medium risk customer for 40%", risk: customer.Medium, totalOrders: 1, deposit: "400"},
		{name: "should ask an established medium risk customer for 25%", risk: customer.Medium, totalOrders: 12, deposit: "250"},
		{name: "should ask an established low risk customer for 10%", risk: customer.Low, totalOrders: 12, deposit: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, api := newPlacementAPI(t, customer.CreditProfile{
				CreditLimit:     decimal.NewFromInt(100000),
				PendingExposure: decimal.Zero,
				IsVerified:      true,
				RiskLevel:       tt.risk,
				TotalOrders:     tt.totalOrders,
				AccountAgeDays:  400,
			})

			rec := api.do(http.MethodPost, "/api/v1/orders/place", body)

			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
			result := decode[servers.PlacementResult](t, rec)
			assert.True(t, result.Approved)
			assert.Equal(t, tt.deposit, result.RequiredDeposit.String())
			require.Len(t, orders.added, 1)
			assert.Equal(t, result.OrderId.String(), orders.added[0].ID().String())
		})
	}
}

func TestPlaceOrder_RejectedOrderIsNotStored(t *testing.T) {
	orders, api := newPlacementAPI(t, customer.CreditProfile{
		CreditLimit:     decimal.NewFromInt(100000),
		PendingExposure: decimal.NewFromInt(99500),
		IsVerified:      true,
		RiskLevel:       customer.High,
		TotalOrders:     3,
		AccountAgeDays:  400,
	})

	rec := api.do(http.MethodPost, "/api/v1/orders/place", `{
		"customerId": "customer-1",
		"items": [{"productId": "sku-1", "productName": "Server", "quantity": 1, "unitPrice": "1000"}]
	}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	result := decode[servers.PlacementResult](t, rec)
	assert.Equal(t, "Total exposure (100500) exceeds credit limit (100000)", result.Message)
	assert.Empty(t, orders.added)
}
