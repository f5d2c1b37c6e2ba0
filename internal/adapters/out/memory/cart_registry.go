package memory

import (
	"sync"

	"pizzeria/internal/core/domain/model/cart"
	"pizzeria/internal/pkg/errs"
)

// CartRegistry keeps one cart per client session in process memory.
// Carts are created lazily on first access and dropped after checkout.
type CartRegistry struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

// NewCartRegistry creates an empty cart registry.
func NewCartRegistry() *CartRegistry {
	return &CartRegistry{
		carts: make(map[string]*cart.Cart),
	}
}

// GetOrCreate returns the cart bound to the session, creating an empty one
// on first access.
func (r *CartRegistry) GetOrCreate(sessionID string) (*cart.Cart, error) {
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("sessionID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[sessionID]
	if !ok {
		c = cart.NewCart()
		r.carts[sessionID] = c
	}

	return c, nil
}

// Remove discards the session's cart.
func (r *CartRegistry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
}
