package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// ClearCartCommandHandler handles emptying a session's cart.
type ClearCartCommandHandler struct {
	carts ports.CartRegistry
}

// NewClearCartCommandHandler creates a handler for cart clearing.
func NewClearCartCommandHandler(carts ports.CartRegistry) ClearCartCommandHandler {
	return ClearCartCommandHandler{carts: carts}
}

// Handle empties the session's cart. Clearing an already empty cart succeeds.
func (h *ClearCartCommandHandler) Handle(_ context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := h.carts.GetOrCreate(cmd.SessionID())
	if err != nil {
		return err
	}

	c.Clear()
	return nil
}
