package cart

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through one of the factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or NewItemFromProduct")

// Item is a single cart line: a product reference with a quantity.
// Identity key is the product id. Item is a value object; quantity changes
// produce new values via WithQuantity.
type Item struct {
	productID kernel.UUID
	name      string
	unitPrice kernel.Money
	quantity  int
	imageRef  string

	guard guard.ConstructorGuard
}

// NewItem creates a cart item from raw attributes.
// Used when reconstructing items from persistence.
func NewItem(
	productID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	imageRef string,
) (Item, error) {
	item := Item{
		imageRef: imageRef,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// NewItemFromProduct creates a cart item referencing a catalog product.
// The product's identity, name, price and image are copied by value, so a
// later catalog change does not alter lines already in a cart.
func NewItemFromProduct(p product.Product, quantity int) (Item, error) {
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	return NewItem(p.ID(), p.Name(), p.Price(), quantity, p.ImageRef())
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identity key of the line.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product display name captured at add time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the per-unit price captured at add time.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns the line quantity. Always >= 1 for a constructed item.
func (i Item) Quantity() int {
	return i.quantity
}

// ImageRef returns the product image reference captured at add time.
func (i Item) ImageRef() string {
	return i.imageRef
}

// Subtotal returns unit price times quantity.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.MulInt(i.quantity)
}

// WithQuantity returns a copy of the item with the quantity set exactly.
// The quantity must be a positive integer.
func (i Item) WithQuantity(quantity int) (Item, error) {
	if err := i.Validate(); err != nil {
		return Item{}, err
	}
	out := i
	if err := out.setQuantity(quantity); err != nil {
		return Item{}, err
	}
	return out, nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
