// Package order provides the order record aggregate for the pizzeria
// ordering system: an immutable snapshot of a cart taken exactly once at
// submission time, moving through the kitchen pipeline.
//
// The package includes:
//   - Order: The aggregate root holding the frozen item snapshot and delivery details
//   - Stage: A state machine that enforces valid pipeline transitions
//   - DeliveryMode and Address: Value objects describing how the order is fulfilled
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-empty item snapshot
//   - Exactly one of table number / delivery address is populated, matching the delivery mode
//   - The total always equals the recomputed sum of the item snapshot
//   - The stage follows a defined workflow: KITCHEN -> READY -> DELIVERED
//   - Items are never mutated after creation; only the stage and readyAt timestamp change
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
