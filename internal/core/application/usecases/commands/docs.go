// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: construction-time
// validation, domain logic, and persistence through the outbound ports.
//
// Cart commands mutate the session's in-memory cart. Order commands move
// records through the stage store; moves insert into the destination stage
// before removing from the source, so a failure between the two writes can
// duplicate a record but never lose one.
package commands
