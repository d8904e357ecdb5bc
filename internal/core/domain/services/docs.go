// Package services provides domain services that implement business logic
// spanning multiple entities.
//
// The package includes:
//   - OrderPricer: computes an order's subtotal, shipping cost, and total
//     from its line items and the restaurant's default shipping cost.
package services
