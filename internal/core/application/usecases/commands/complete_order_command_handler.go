package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// CompleteOrderCommandHandler removes a ready order from the pipeline once
// it is handed over to the customer.
type CompleteOrderCommandHandler struct {
	store ports.StageStore
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(store ports.StageStore) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{store: store}
}

// Handle processes the completion. The aggregate's transition rules are
// checked first, so only a ready order can leave the pipeline; an id not in
// the ready stage yields an object-not-found error.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.store.Get(ctx, order.StageReady, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	return h.store.RemoveByID(ctx, order.StageReady, cmd.OrderID())
}
