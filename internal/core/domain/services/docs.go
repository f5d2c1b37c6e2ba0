// Package services provides domain services that implement business logic
// not owned by a single aggregate.
//
// The package includes:
//   - PaymentValidator: checks checkout payment details; payment is
//     simulated, so validation is the whole of processing
package services
