package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []commands.OrderItem {
	return []commands.OrderItem{
		{ProductID: "sku-1", ProductName: "Keyboard", Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
		{ProductID: "sku-2", ProductName: "Mouse", Quantity: 3, UnitPrice: decimal.NewFromInt(50)},
	}
}

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "customer-1", validItems())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "customer-1", cmd.CustomerID())
	require.Len(t, cmd.Items(), 2)
	assert.Equal(t, "sku-2", cmd.Items()[1].ProductID())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "customer-1", validItems())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyCustomer(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", validItems())
	require.ErrorIs(t, err, commands.ErrCustomerIDIsRequired)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "customer-1", nil)
	require.ErrorIs(t, err, commands.ErrItemsAreRequired)
}

func TestNewCreateOrderCommand_InvalidItem(t *testing.T) {
	items := validItems()
	items[1].Quantity = 0

	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "customer-1", items)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "items[1]")
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
