package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// AddCartItemCommandHandler handles the business logic for adding a menu
// product to a session's cart.
type AddCartItemCommandHandler struct {
	carts    ports.CartRegistry
	products ports.ProductRepository
}

// NewAddCartItemCommandHandler creates a handler for cart additions.
func NewAddCartItemCommandHandler(
	carts ports.CartRegistry,
	products ports.ProductRepository,
) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		carts:    carts,
		products: products,
	}
}

// Handle processes the add-to-cart command. Looks up the product on the
// menu, then adds it to the session's cart, merging with an existing line
// for the same product.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := h.products.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	c, err := h.carts.GetOrCreate(cmd.SessionID())
	if err != nil {
		return err
	}

	return c.Add(p, cmd.Quantity())
}
