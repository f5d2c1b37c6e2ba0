package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// UpdateCartItemQuantityCommandHandler handles setting the quantity of a
// cart line.
type UpdateCartItemQuantityCommandHandler struct {
	carts ports.CartRegistry
}

// NewUpdateCartItemQuantityCommandHandler creates a handler for quantity updates.
func NewUpdateCartItemQuantityCommandHandler(carts ports.CartRegistry) UpdateCartItemQuantityCommandHandler {
	return UpdateCartItemQuantityCommandHandler{carts: carts}
}

// Handle processes the quantity update. A non-positive quantity removes the
// line; a product not in the cart leaves it unchanged.
func (h *UpdateCartItemQuantityCommandHandler) Handle(_ context.Context, cmd UpdateCartItemQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.GetOrCreate(cmd.SessionID())
	if err != nil {
		return err
	}

	return c.UpdateQuantity(cmd.ProductID(), cmd.Quantity())
}
