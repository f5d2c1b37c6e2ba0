// Package cart provides the shopping cart aggregate for the pizzeria
// ordering system. The cart is the mutable working set of a customer
// session: an ordered sequence of items keyed by product identity.
//
// Key business rules:
//   - At most one item per product; adding an existing product increments
//     its quantity instead of duplicating the line
//   - Quantities are positive integers; adding a non-positive quantity is
//     rejected, and updating a quantity to zero or below removes the line
//   - Totals are recomputed on demand and never cached across mutations
//   - Insertion order is preserved for display
//
// The cart performs no I/O. It serializes its own operations with an
// internal mutex so concurrent requests on the same session behave as a
// single logical writer.
package cart
