// Package product provides the catalog product model consumed by the cart.
// Products are supplied by the catalog repository; this package only models
// and validates them, it never fetches.
package product

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is a catalog entry: a pizza (or other menu item) with a stable
// identity, a URL slug, display data and a unit price.
type Product struct {
	id          kernel.UUID
	slug        string
	name        string
	description string
	price       kernel.Money
	imageRef    string

	guard guard.ConstructorGuard
}

// NewProduct creates a validated catalog product.
// The id must be valid, slug and name must be non-empty, and the price is
// guaranteed non-negative by the Money value object. Description and image
// reference are optional display data.
func NewProduct(
	id kernel.UUID,
	slug string,
	name string,
	description string,
	price kernel.Money,
	imageRef string,
) (Product, error) {
	p := Product{
		description: description,
		imageRef:    imageRef,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setSlug(slug),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return Product{}, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p Product) ID() kernel.UUID {
	return p.id
}

// Slug returns the URL-friendly identifier used by the presentation layer.
func (p Product) Slug() string {
	return p.slug
}

// Name returns the display name.
func (p Product) Name() string {
	return p.name
}

// Description returns the display description.
func (p Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p Product) Price() kernel.Money {
	return p.price
}

// ImageRef returns the image reference used by the presentation layer.
func (p Product) ImageRef() string {
	return p.imageRef
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setSlug(slug string) error {
	if slug == "" {
		return errs.NewValueIsRequiredError("slug")
	}
	p.slug = slug
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}
