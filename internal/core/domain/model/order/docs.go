// Package order implements the Order aggregate root and its lifecycle.
//
// The package includes:
//   - Order: identity, line items, the total computed at creation, status and timestamps
//   - Status: the lifecycle state machine with a fixed transition table
//   - LineItem: an immutable product line with a derived subtotal
//   - CancellationRule: the predicate deciding whether an order can still be cancelled
//   - OrderCreated and OrderStatusChanged: the domain events the aggregate raises
//
// Key business rules:
//   - Status changes only through ChangeStatus (or Confirm/Cancel), following
//     Pending -> Confirmed -> Processing -> Shipped -> Delivered
//   - Pending, Confirmed and Processing orders can be cancelled; Delivered and
//     Cancelled orders are terminal
//   - The total amount is the sum of item subtotals and never changes after creation
//   - Every successful mutation appends exactly one event to the aggregate's buffer
package order
