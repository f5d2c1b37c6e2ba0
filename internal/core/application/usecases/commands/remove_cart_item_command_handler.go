package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// RemoveCartItemCommandHandler handles removal of a product line from a
// session's cart.
type RemoveCartItemCommandHandler struct {
	carts ports.CartRegistry
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(carts ports.CartRegistry) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{carts: carts}
}

// Handle processes the removal command. Removing a product that is not in
// the cart succeeds without changing anything.
func (h *RemoveCartItemCommandHandler) Handle(_ context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.GetOrCreate(cmd.SessionID())
	if err != nil {
		return err
	}

	c.Remove(cmd.ProductID())
	return nil
}
