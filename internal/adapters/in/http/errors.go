package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// mapError picks the response status for an application error. Unknown
// errors are reported as 500 without leaking their text.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, commands.ErrCustomerAlreadyExists),
		errors.Is(err, order.ErrOrderAlreadyCancelled),
		errors.Is(err, order.ErrCannotCancel):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrItemsAreRequired),
		errors.Is(err, commands.ErrCustomerIDIsRequired):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
