package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a checkout request: it turns the session's
// cart into an order record in the kitchen stage. Table orders carry a table
// number, delivery orders an address; exactly one of the two is set, which
// the order aggregate enforces.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(sessionID, order.ModeTable, 7, nil, services.MethodPix, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(carts, store, payment)
//	submitted, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("order %s sent to the kitchen", submitted.ID())
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID     string
	mode          order.DeliveryMode
	tableNumber   int
	address       *order.Address
	paymentMethod services.PaymentMethod
	card          *services.CardDetails

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a checkout command. The fulfillment fields
// and payment details are validated later by the order aggregate and the
// payment validator; here only the session id and delivery mode are checked.
func NewSubmitOrderCommand(
	sessionID string,
	mode order.DeliveryMode,
	tableNumber int,
	address *order.Address,
	paymentMethod services.PaymentMethod,
	card *services.CardDetails,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		tableNumber:   tableNumber,
		address:       address,
		paymentMethod: paymentMethod,
		card:          card,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setMode(mode),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// SessionID returns the client session checking out.
func (c SubmitOrderCommand) SessionID() string {
	return c.sessionID
}

// Mode returns the order's delivery mode.
func (c SubmitOrderCommand) Mode() order.DeliveryMode {
	return c.mode
}

// TableNumber returns the table for table orders, zero otherwise.
func (c SubmitOrderCommand) TableNumber() int {
	return c.tableNumber
}

// Address returns the delivery address, nil for table orders.
func (c SubmitOrderCommand) Address() *order.Address {
	return c.address
}

// PaymentMethod returns how the customer pays.
func (c SubmitOrderCommand) PaymentMethod() services.PaymentMethod {
	return c.paymentMethod
}

// Card returns the card details, nil for methods that need none.
func (c SubmitOrderCommand) Card() *services.CardDetails {
	return c.card
}

func (c *SubmitOrderCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *SubmitOrderCommand) setMode(mode order.DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}
