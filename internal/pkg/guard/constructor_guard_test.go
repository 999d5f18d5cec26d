package guard_test

import (
	"errors"
	"sync"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errCommandNotConstructed := errors.New("ConfirmCommand must be created via NewConfirmCommand")

	type ConfirmCommand struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	newConfirmCommand := func(orderID string) (ConfirmCommand, error) {
		if orderID == "" {
			return ConfirmCommand{}, errors.New("order id is required")
		}
		return ConfirmCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	validate := func(c ConfirmCommand) error {
		return c.guard.Validate(errCommandNotConstructed)
	}

	t.Run("should pass for command built by constructor", func(t *testing.T) {
		cmd, err := newConfirmCommand("order-1")

		require.NoError(t, err)
		require.NoError(t, validate(cmd))
		assert.Equal(t, "order-1", cmd.orderID)
	})

	t.Run("should fail for literal command", func(t *testing.T) {
		cmd := ConfirmCommand{orderID: "order-1"}

		require.ErrorIs(t, validate(cmd), errCommandNotConstructed)
	})

	t.Run("should fail for command returned by a failed constructor", func(t *testing.T) {
		cmd, err := newConfirmCommand("")

		require.Error(t, err)
		require.ErrorIs(t, validate(cmd), errCommandNotConstructed)
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, g.Validate(validationError))
		}()
	}
	wg.Wait()
}
