package http

import (
	"ordering/internal/generated/servers"

	validatorv10 "github.com/go-playground/validator/v10"
)

// RequestValidator plugs validator/v10 into echo's Context.Validate.
type RequestValidator struct {
	validate *validatorv10.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validatorv10.New()
	v.RegisterStructValidation(newOrderItemStructValidation, servers.NewOrderItem{})
	v.RegisterStructValidation(newCustomerStructValidation, servers.NewCustomer{})
	return &RequestValidator{validate: v}
}

func (rv *RequestValidator) Validate(i any) error {
	return rv.validate.Struct(i)
}

// decimal.Decimal is a struct, so the numeric tags do not apply to prices.
func newOrderItemStructValidation(sl validatorv10.StructLevel) {
	item := sl.Current().Interface().(servers.NewOrderItem)
	if item.UnitPrice.IsNegative() {
		sl.ReportError(item.UnitPrice, "unitPrice", "UnitPrice", "gte", "0")
	}
}

func newCustomerStructValidation(sl validatorv10.StructLevel) {
	c := sl.Current().Interface().(servers.NewCustomer)
	if c.CreditLimit != nil && c.CreditLimit.IsNegative() {
		sl.ReportError(*c.CreditLimit, "creditLimit", "CreditLimit", "gte", "0")
	}
}
