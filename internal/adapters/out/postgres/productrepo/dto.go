// Package productrepo provides data transfer objects and mapping functions
// for menu persistence. The menu is seeded from an embedded catalog at
// startup and read-only afterwards.
package productrepo

import (
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for menu products.
// Prices are stored as exact decimals, never floats.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug        string    `gorm:"uniqueIndex"`
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(10,2)"`
	ImageRef    string
	Position    int `gorm:"index"`
}

// TableName specifies the database table name for menu products.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product to its database representation.
func fromDomain(p product.Product, position int) ProductDTO {
	return ProductDTO{
		ID:          p.ID().Bytes(),
		Slug:        p.Slug(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price().Decimal(),
		ImageRef:    p.ImageRef(),
		Position:    position,
	}
}

// toDomain converts a database DTO to a product value object.
func toDomain(dto ProductDTO) (product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return product.Product{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return product.Product{}, err
	}

	return product.NewProduct(id, dto.Slug, dto.Name, dto.Description, price, dto.ImageRef)
}
