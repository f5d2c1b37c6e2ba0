package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
)

// ProductRepository defines the read contract for the pizzeria's menu.
// The menu is seeded at startup and treated as read-only at runtime.
type ProductRepository interface {
	// GetAll retrieves every product on the menu, in menu order.
	GetAll(ctx context.Context) ([]product.Product, error)

	// Get retrieves a product by its unique identifier.
	// Returns an object-not-found error for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (product.Product, error)
}
