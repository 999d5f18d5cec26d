package services_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDomainService_CancelOrder(t *testing.T) {
	svc := services.NewOrderDomainService()

	t.Run("should cancel a pending order", func(t *testing.T) {
		o := orderWithTotal(t, 100)

		require.True(t, svc.CanCancelOrder(o))
		require.NoError(t, svc.CancelOrder(o))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Len(t, o.DomainEvents(), 2)
	})

	t.Run("should refuse a delivered order", func(t *testing.T) {
		o := orderWithTotal(t, 100)
		for _, s := range []order.Status{order.Confirmed, order.Processing, order.Shipped, order.Delivered} {
			require.NoError(t, o.ChangeStatus(s))
		}

		err := svc.CancelOrder(o)

		assert.False(t, svc.CanCancelOrder(o))
		assert.EqualError(t, err, "order cannot be cancelled: already delivered")
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should refuse a cancelled order", func(t *testing.T) {
		o := orderWithTotal(t, 100)
		require.NoError(t, o.Cancel())

		err := svc.CancelOrder(o)

		var cannotCancel *order.CannotCancelError
		require.ErrorAs(t, err, &cannotCancel)
		assert.Equal(t, order.CannotCancelReasonCancelled, cannotCancel.Reason)
	})

	t.Run("should surface the transition error for a shipped order", func(t *testing.T) {
		o := orderWithTotal(t, 100)
		for _, s := range []order.Status{order.Confirmed, order.Processing, order.Shipped} {
			require.NoError(t, o.ChangeStatus(s))
		}

		err := svc.CancelOrder(o)

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject an order not built by a constructor", func(t *testing.T) {
		err := svc.CancelOrder(&order.Order{})

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.False(t, svc.CanCancelOrder(&order.Order{}))
	})

	t.Run("should report a nil order as not cancellable", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.False(t, svc.CanCancelOrder(nil))
		})
	})
}
