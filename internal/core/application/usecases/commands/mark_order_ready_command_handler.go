package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// MarkOrderReadyCommandHandler moves an order from the kitchen stage to the
// ready stage.
type MarkOrderReadyCommandHandler struct {
	store ports.StageStore
}

// NewMarkOrderReadyCommandHandler creates a handler for kitchen completions.
func NewMarkOrderReadyCommandHandler(store ports.StageStore) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{store: store}
}

// Handle processes the transition. Stamps readyAt and moves the record from
// the kitchen stage to the ready stage. An id not in the kitchen stage
// yields an object-not-found error and changes nothing.
func (h *MarkOrderReadyCommandHandler) Handle(ctx context.Context, cmd MarkOrderReadyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.store.Get(ctx, order.StageKitchen, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkReady(time.Now()); err != nil {
		return err
	}

	return h.store.Move(ctx, order.StageKitchen, order.StageReady, aggregate)
}
