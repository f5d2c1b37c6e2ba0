package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// GetStageOrdersQueryHandler retrieves one stage's order collection from the
// stage store and shapes it for display.
type GetStageOrdersQueryHandler struct {
	store ports.StageStore
}

// NewGetStageOrdersQueryHandler creates a handler for stage listing queries.
func NewGetStageOrdersQueryHandler(store ports.StageStore) GetStageOrdersQueryHandler {
	return GetStageOrdersQueryHandler{store: store}
}

// Handle executes the query. Records come back in insertion order, oldest
// first, which is the order the kitchen works through them.
func (h GetStageOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStageOrdersQuery,
) ([]GetStageOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.store.List(ctx, query.Stage())
	if err != nil {
		return nil, err
	}

	responses := make([]GetStageOrdersQueryResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, toStageOrderResponse(aggregate))
	}

	return responses, nil
}

func toStageOrderResponse(aggregate *order.Order) GetStageOrdersQueryResponse {
	items := make([]StageOrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, StageOrderItem{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().String(),
			Quantity:  item.Quantity(),
			ImageRef:  item.ImageRef(),
		})
	}

	var address *StageOrderAddress
	if a := aggregate.Address(); a != nil {
		address = &StageOrderAddress{
			Street:       a.Street(),
			Number:       a.Number(),
			Neighborhood: a.Neighborhood(),
			Complement:   a.Complement(),
		}
	}

	return GetStageOrdersQueryResponse{
		ID:           aggregate.ID(),
		Items:        items,
		Total:        aggregate.Total().String(),
		DeliveryMode: aggregate.DeliveryMode().String(),
		TableNumber:  aggregate.TableNumber(),
		Address:      address,
		CreatedAt:    aggregate.CreatedAt(),
		ReadyAt:      aggregate.ReadyAt(),
		Stage:        aggregate.Stage().String(),
	}
}
