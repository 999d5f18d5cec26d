// Package services provides domain services for rules that span aggregates or
// do not belong to a single one.
//
// The package includes:
//   - OrderDomainService: cancels orders through the cancellation rule
//   - OrderPlacementService: admission control of new orders against a
//     customer's credit profile (eligibility, deposit, manual review)
//
// Services are stateless values; they perform no I/O.
package services
