package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{fmt.Errorf("load: %w", errs.NewObjectNotFoundError("customer", "7")), http.StatusNotFound},
		{&order.InvalidTransitionError{Current: order.Pending, Requested: order.Delivered}, http.StatusUnprocessableEntity},
		{order.ErrOrderAlreadyCancelled, http.StatusConflict},
		{&order.CannotCancelError{Reason: order.CannotCancelReasonCancelled}, http.StatusConflict},
		{&commands.CustomerAlreadyExistsError{Email: "a@b.c"}, http.StatusConflict},
		{order.ErrInvalidStatus, http.StatusBadRequest},
		{kernel.ErrUUIDIsNotConstructed, http.StatusBadRequest},
		{errs.NewValueIsOutOfRangeError("batch", 0, 1, 10), http.StatusBadRequest},
		{commands.ErrItemsAreRequired, http.StatusBadRequest},
		{commands.ErrCustomerIDIsRequired, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, message := mapError(tt.err)

			assert.Equal(t, tt.want, status)
			if status == http.StatusInternalServerError {
				assert.Equal(t, "Internal Server Error", message)
			} else {
				assert.Equal(t, tt.err.Error(), message)
			}
		})
	}
}
