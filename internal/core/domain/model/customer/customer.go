package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DefaultCreditLimit applies when a customer is registered without an explicit limit.
var DefaultCreditLimit = decimal.NewFromInt(100000)

var (
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the aggregate root for a buyer and the credit terms they were
// granted. New customers start unverified with a LOW risk level.
type Customer struct {
	kernel.AggregateRoot

	id          kernel.UUID
	email       string
	name        string
	creditLimit decimal.Decimal
	isVerified  bool
	riskLevel   RiskLevel
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewCustomer registers a customer and raises CustomerCreated. A nil
// creditLimit means DefaultCreditLimit; an explicit one must be positive.
func NewCustomer(id kernel.UUID, email, name string, creditLimit *decimal.Decimal) (*Customer, error) {
	limit := DefaultCreditLimit
	if creditLimit != nil {
		limit = *creditLimit
	}

	now := time.Now().UTC()
	c := &Customer{
		riskLevel:     Low,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setEmail(email),
		c.setName(name),
		c.setCreditLimit(limit),
	); err != nil {
		return nil, err
	}

	c.RaiseDomainEvent(CustomerCreated{
		BaseEvent:   kernel.NewBaseEvent(c.id.String()),
		CustomerID:  c.id.String(),
		Email:       c.email,
		Name:        c.name,
		CreditLimit: c.creditLimit,
	})

	return c, nil
}

// RestoreCustomer rebuilds a customer from persistence without raising events.
func RestoreCustomer(
	id kernel.UUID,
	email, name string,
	creditLimit decimal.Decimal,
	isVerified bool,
	riskLevel RiskLevel,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	c := &Customer{
		isVerified:    isVerified,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setEmail(email),
		c.setName(name),
		c.setCreditLimit(creditLimit),
		c.setRiskLevel(riskLevel),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) CreditLimit() decimal.Decimal {
	return c.creditLimit
}

func (c *Customer) IsVerified() bool {
	return c.isVerified
}

func (c *Customer) RiskLevel() RiskLevel {
	return c.riskLevel
}

func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Customer) UpdatedAt() time.Time {
	return c.updatedAt
}

// Verify marks the customer's identity as checked. Verifying twice is a no-op.
func (c *Customer) Verify() {
	if c.isVerified {
		return
	}
	c.isVerified = true
	c.updatedAt = time.Now().UTC()
}

// ChangeRiskLevel assigns a new risk tier.
func (c *Customer) ChangeRiskLevel(level RiskLevel) error {
	if err := c.setRiskLevel(level); err != nil {
		return err
	}
	c.updatedAt = time.Now().UTC()
	return nil
}

// AccountAgeDays returns the number of whole days between creation and now.
func (c *Customer) AccountAgeDays(now time.Time) int {
	if now.Before(c.createdAt) {
		return 0
	}
	return int(now.Sub(c.createdAt).Hours() / 24)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	c.email = strings.ToLower(email)
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setCreditLimit(limit decimal.Decimal) error {
	if !limit.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("credit limit is invalid", fmt.Errorf("%s is not greater than 0", limit))
	}
	c.creditLimit = limit
	return nil
}

func (c *Customer) setRiskLevel(level RiskLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}
	c.riskLevel = level
	return nil
}
