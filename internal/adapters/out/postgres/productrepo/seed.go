package productrepo

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed seed/menu.json
var seedFS embed.FS

// seedEntry mirrors one record of the embedded menu catalog.
type seedEntry struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	ImageRef    string `json:"imageRef"`
}

// Seed loads the embedded menu catalog into the products table. Product ids
// are fixed in the catalog, so reseeding updates rows in place and persisted
// order items keep pointing at the same products across restarts.
func Seed(ctx context.Context, db *gorm.DB) error {
	raw, err := seedFS.ReadFile("seed/menu.json")
	if err != nil {
		return fmt.Errorf("read embedded menu: %w", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return fmt.Errorf("decode embedded menu: %w", err)
	}

	dtos := make([]ProductDTO, 0, len(entries))
	for position, entry := range entries {
		p, err := toProduct(entry)
		if err != nil {
			return fmt.Errorf("invalid menu entry %q: %w", entry.Slug, err)
		}
		dtos = append(dtos, fromDomain(p, position))
	}

	return db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dtos).Error
}

func toProduct(entry seedEntry) (product.Product, error) {
	id, err := kernel.UUIDFromString(entry.ID)
	if err != nil {
		return product.Product{}, err
	}

	price, err := kernel.NewMoneyFromString(entry.Price)
	if err != nil {
		return product.Product{}, err
	}

	return product.NewProduct(id, entry.Slug, entry.Name, entry.Description, price, entry.ImageRef)
}
