package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var ErrGetCatalogQueryIsNotConstructed = errors.New(
	"GetCatalogQuery must be created via NewGetCatalogQuery constructor",
)

// GetCatalogQuery retrieves the full menu for display.
//
// Example:
//
//	query := NewGetCatalogQuery()
//	handler := NewGetCatalogQueryHandler(db)
//
//	menu, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load menu: %w", err)
//	}
//	fmt.Printf("menu has %d products\n", len(menu))
type GetCatalogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCatalogQuery creates a query to retrieve the menu.
// This is a parameterless query that fetches every product.
func NewGetCatalogQuery() GetCatalogQuery {
	return GetCatalogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCatalogQuery) Validate() error {
	return q.guard.Validate(ErrGetCatalogQueryIsNotConstructed)
}

// GetCatalogQueryResponse represents one menu product for display.
// The price is a decimal string, already rounded to cents.
type GetCatalogQueryResponse struct {
	ID          kernel.UUID
	Slug        string
	Name        string
	Description string
	Price       string
	ImageRef    string
}
