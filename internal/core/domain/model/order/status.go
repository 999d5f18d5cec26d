package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// ErrInvalidStatus is wrapped by StatusFromString for names outside the lifecycle.
var ErrInvalidStatus = errs.NewValueIsInvalidError("order status")

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │              │
//	   └────────────┴──────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. The table in allowedTransitions is the
// complete set of legal moves; a status never transitions to itself.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Pending
	Confirmed
	Processing
	Shipped
	Delivered
	Cancelled
)

var statusNames = map[Status]string{
	Pending:    "PENDING",
	Confirmed:  "CONFIRMED",
	Processing: "PROCESSING",
	Shipped:    "SHIPPED",
	Delivered:  "DELIVERED",
	Cancelled:  "CANCELLED",
}

var allowedTransitions = map[Status][]Status{
	Pending:    {Confirmed, Cancelled},
	Confirmed:  {Processing, Cancelled},
	Processing: {Shipped, Cancelled},
	Shipped:    {Delivered},
	Delivered:  {},
	Cancelled:  {},
}

// NewPendingStatus returns the status every new order starts in.
func NewPendingStatus() Status {
	return Pending
}

// StatusFromString parses one of the canonical names (PENDING, CONFIRMED,
// PROCESSING, SHIPPED, DELIVERED, CANCELLED). Matching is exact and
// case-sensitive; anything else wraps ErrInvalidStatus.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q is not a valid status", ErrInvalidStatus, s)
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Processing, Shipped, Delivered, Cancelled}
}

// String returns the canonical name, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Validate rejects Unknown and out-of-range values, e.g. a corrupt database column.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// CanTransitionTo reports whether the lifecycle allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	next, ok := allowedTransitions[s]
	return ok && len(next) == 0
}

func (s Status) IsCancelled() bool {
	return s == Cancelled
}

func (s Status) IsDelivered() bool {
	return s == Delivered
}
