package commands

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// SubmitOrderCommandHandler handles checkout: it validates payment, freezes
// the cart into an order record, inserts it into the kitchen stage, and
// empties the cart.
type SubmitOrderCommandHandler struct {
	carts   ports.CartRegistry
	store   ports.StageStore
	payment *services.PaymentValidator
}

// NewSubmitOrderCommandHandler creates a handler for checkout operations.
func NewSubmitOrderCommandHandler(
	carts ports.CartRegistry,
	store ports.StageStore,
	payment *services.PaymentValidator,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		carts:   carts,
		store:   store,
		payment: payment,
	}
}

// Handle processes the checkout. The order record is a deep copy of the
// cart's items: once submitted it never changes, whatever happens to the
// cart afterwards. The cart is emptied only after the record is safely in
// the kitchen stage.
//
// Generated ids collide only in pathological cases; if the insert still
// reports a duplicate, one retry with a fresh id is attempted before
// giving up.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := h.payment.Validate(cmd.PaymentMethod(), cmd.Card(), now); err != nil {
		return nil, err
	}

	c, err := h.carts.GetOrCreate(cmd.SessionID())
	if err != nil {
		return nil, err
	}

	items := c.Items()
	submitted, err := order.NewOrder(
		kernel.NewUUID(),
		items,
		cmd.Mode(),
		cmd.TableNumber(),
		cmd.Address(),
		now,
	)
	if err != nil {
		return nil, err
	}

	if err = h.store.Insert(ctx, order.StageKitchen, submitted); err != nil {
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return nil, err
		}

		submitted, err = order.NewOrder(kernel.NewUUID(), items, cmd.Mode(), cmd.TableNumber(), cmd.Address(), now)
		if err != nil {
			return nil, err
		}
		if err = h.store.Insert(ctx, order.StageKitchen, submitted); err != nil {
			return nil, err
		}
	}

	c.Clear()
	return submitted, nil
}
