package customer

import "github.com/shopspring/decimal"

// CreditProfile is the read-only view of a customer's credit standing used by
// admission control. It is assembled by a credit lookup and never persisted.
type CreditProfile struct {
	CreditLimit decimal.Decimal
	// PendingExposure is the total of the customer's orders that are neither
	// delivered nor cancelled.
	PendingExposure decimal.Decimal
	IsVerified      bool
	RiskLevel       RiskLevel
	TotalOrders     int
	AccountAgeDays  int
}
