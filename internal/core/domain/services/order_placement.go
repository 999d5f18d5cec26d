package services

import (
	"fmt"

	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Admission control thresholds.
var (
	UnverifiedOrderLimit      = decimal.NewFromInt(10000)
	MaxCreditUtilization      = decimal.NewFromInt(90)
	MinimumDeposit            = decimal.NewFromInt(100)
	LargeOrderThreshold       = decimal.NewFromInt(50000)
	FirstOrderReviewThreshold = decimal.NewFromInt(5000)
)

const (
	// NewCustomerOrderCount is the order count below which a customer pays new-customer deposit rates.
	NewCustomerOrderCount  = 5
	BulkOrderItemThreshold = 100
	NewAccountDays         = 30
)

type depositRates struct {
	newCustomer      decimal.Decimal
	existingCustomer decimal.Decimal
}

var depositRateTable = map[customer.RiskLevel]depositRates{
	customer.Low:    {newCustomer: decimal.RequireFromString("0.20"), existingCustomer: decimal.RequireFromString("0.10")},
	customer.Medium: {newCustomer: decimal.RequireFromString("0.40"), existingCustomer: decimal.RequireFromString("0.25")},
	customer.High:   {newCustomer: decimal.RequireFromString("0.60"), existingCustomer: decimal.RequireFromString("0.50")},
}

var hundred = decimal.NewFromInt(100)

// PlacementDecision is the outcome of CanPlaceOrder. Reason is empty when Allowed.
type PlacementDecision struct {
	Allowed bool
	Reason  string
}

// AdmissionResult combines every admission check for one prospective order.
type AdmissionResult struct {
	PlacementDecision
	RequiredDeposit        decimal.Decimal
	RequiresManualApproval bool
}

// OrderPlacementService decides whether a prospective order may be placed
// against a customer's credit, which deposit it needs and whether a human has
// to review it. It never mutates its inputs and never fails.
type OrderPlacementService struct{}

func NewOrderPlacementService() OrderPlacementService {
	return OrderPlacementService{}
}

// CanPlaceOrder runs three gates in order and stops at the first failure:
//  1. pending exposure plus the order total must not exceed the credit limit
//  2. unverified customers may not order more than UnverifiedOrderLimit
//  3. credit utilization must not exceed MaxCreditUtilization percent
func (OrderPlacementService) CanPlaceOrder(
	o *order.Order,
	creditLimit decimal.Decimal,
	pendingExposure decimal.Decimal,
	isVerified bool,
) PlacementDecision {
	total := o.TotalAmount()
	exposure := pendingExposure.Add(total)

	if exposure.GreaterThan(creditLimit) {
		return PlacementDecision{
			Reason: fmt.Sprintf("Total exposure (%s) exceeds credit limit (%s)", exposure, creditLimit),
		}
	}

	if !isVerified && total.GreaterThan(UnverifiedOrderLimit) {
		return PlacementDecision{
			Reason: fmt.Sprintf("Unverified customers can only place orders up to %s", UnverifiedOrderLimit),
		}
	}

	// A zero limit can only get here with zero exposure, which uses nothing.
	if creditLimit.IsPositive() {
		utilization := exposure.Div(creditLimit).Mul(hundred)
		if utilization.GreaterThan(MaxCreditUtilization) {
			return PlacementDecision{
				Reason: fmt.Sprintf("Credit utilization (%s%%) exceeds maximum allowed (%s%%)",
					utilization.StringFixed(2), MaxCreditUtilization),
			}
		}
	}

	return PlacementDecision{Allowed: true}
}

// CalculateRequiredDeposit applies the risk/history rate to amount, with
// MinimumDeposit as an absolute floor. Customers with fewer than
// NewCustomerOrderCount orders pay the new-customer rate. An unknown risk level
// is charged the HIGH rate.
func (OrderPlacementService) CalculateRequiredDeposit(
	amount decimal.Decimal,
	risk customer.RiskLevel,
	totalOrders int,
) decimal.Decimal {
	rates, ok := depositRateTable[risk]
	if !ok {
		rates = depositRateTable[customer.High]
	}

	rate := rates.existingCustomer
	if totalOrders < NewCustomerOrderCount {
		rate = rates.newCustomer
	}

	return decimal.Max(amount.Mul(rate), MinimumDeposit)
}

// RequiresManualApproval reports whether any review trigger fires: a large
// order, a bulk order, a new unverified account or a big first order.
func (OrderPlacementService) RequiresManualApproval(
	amount decimal.Decimal,
	itemCount int,
	isVerified bool,
	accountAgeDays int,
	totalOrders int,
) bool {
	return amount.GreaterThan(LargeOrderThreshold) ||
		itemCount > BulkOrderItemThreshold ||
		(!isVerified && accountAgeDays < NewAccountDays) ||
		(totalOrders == 0 && amount.GreaterThan(FirstOrderReviewThreshold))
}

// Evaluate runs every check for o against profile. Deposit and manual approval
// are only computed for allowed orders.
func (s OrderPlacementService) Evaluate(o *order.Order, profile customer.CreditProfile) AdmissionResult {
	decision := s.CanPlaceOrder(o, profile.CreditLimit, profile.PendingExposure, profile.IsVerified)
	if !decision.Allowed {
		return AdmissionResult{PlacementDecision: decision, RequiredDeposit: decimal.Zero}
	}

	return AdmissionResult{
		PlacementDecision: decision,
		RequiredDeposit:   s.CalculateRequiredDeposit(o.TotalAmount(), profile.RiskLevel, profile.TotalOrders),
		RequiresManualApproval: s.RequiresManualApproval(
			o.TotalAmount(),
			len(o.Items()),
			profile.IsVerified,
			profile.AccountAgeDays,
			profile.TotalOrders,
		),
	}
}
