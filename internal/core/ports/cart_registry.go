package ports

import (
	"pizzeria/internal/core/domain/model/cart"
)

// CartRegistry tracks one cart per client session. Carts live only as long
// as the process: they are working state for an order being assembled, not
// durable data.
type CartRegistry interface {
	// GetOrCreate returns the cart bound to the session, creating an
	// empty one on first access. Returns a validation error when
	// sessionID is blank.
	GetOrCreate(sessionID string) (*cart.Cart, error)

	// Remove discards the session's cart. Removing an unknown session
	// is a no-op.
	Remove(sessionID string)
}
