// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain write model: the catalog is read straight
// from the database, stage collections from the stage store, and carts from
// the session registry. Responses are plain structs shaped for display.
package queries
