// Package order provides the domain model for customer orders: the Order
// aggregate root, its line items, and the derived lifecycle status.
//
// Key business rules:
//   - Orders are created pending, with at least one line item and a unit-price
//     snapshot captured per item.
//   - The lifecycle is strictly linear: pending -> in process -> sent ->
//     delivered. Each transition sets one timestamp exactly once.
//   - Status is never stored; it is always derived from the transition
//     timestamps, so there is no second source of truth to drift.
//   - Only pending orders may be edited or deleted, and only by the customer
//     who placed them. The restaurant is immutable after creation.
package order
