package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrUpdateCartItemQuantityCommandIsNotConstructed = errors.New(
	"UpdateCartItemQuantityCommand must be created via NewUpdateCartItemQuantityCommand constructor",
)

// UpdateCartItemQuantityCommand represents a request to set the quantity of
// a product line. A quantity of zero or less removes the line; updating a
// product that is not in the cart is a no-op.
type UpdateCartItemQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewUpdateCartItemQuantityCommand creates a command to set a line's quantity.
// Any quantity is accepted: non-positive values mean removal.
func NewUpdateCartItemQuantityCommand(
	sessionID string,
	productID kernel.UUID,
	quantity int,
) (UpdateCartItemQuantityCommand, error) {
	cmd := UpdateCartItemQuantityCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setProductID(productID),
	); err != nil {
		return UpdateCartItemQuantityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCartItemQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemQuantityCommandIsNotConstructed)
}

// SessionID returns the client session the cart belongs to.
func (c UpdateCartItemQuantityCommand) SessionID() string {
	return c.sessionID
}

// ProductID returns the product line to update.
func (c UpdateCartItemQuantityCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the new quantity for the line.
func (c UpdateCartItemQuantityCommand) Quantity() int {
	return c.quantity
}

func (c *UpdateCartItemQuantityCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *UpdateCartItemQuantityCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
