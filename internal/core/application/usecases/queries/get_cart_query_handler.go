package queries

import (
	"context"

	"pizzeria/internal/core/ports"
)

// GetCartQueryHandler reads a session's cart from the registry.
type GetCartQueryHandler struct {
	carts ports.CartRegistry
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(carts ports.CartRegistry) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

// Handle executes the query. A session that never added anything gets an
// empty cart, not an error.
func (h GetCartQueryHandler) Handle(
	_ context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	c, err := h.carts.GetOrCreate(query.SessionID())
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	items := c.Items()
	lines := make([]CartLineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLineItem{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().String(),
			Quantity:  item.Quantity(),
			Subtotal:  item.Subtotal().String(),
			ImageRef:  item.ImageRef(),
		})
	}

	itemCount, total := c.Totals()
	return GetCartQueryResponse{
		Items:     lines,
		ItemCount: itemCount,
		Total:     total.String(),
	}, nil
}
