package cart

import (
	"sync"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/product"
)

// Cart maintains the set of selected products and quantities for one
// customer session. It preserves insertion order for display and enforces
// at most one line per product.
//
// Cart is created empty at session start and cleared on successful order
// submission or explicit reset. All methods are safe for concurrent use;
// operations on one cart are serialized internally.
type Cart struct {
	mu    sync.Mutex
	items []Item
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Add puts quantity units of the given catalog product into the cart.
// If a line with the same product id already exists its quantity is
// incremented; otherwise a new line is appended.
//
// Quantity must be a positive integer. Non-positive quantities are rejected
// with a validation error and leave the cart unchanged (rejection was chosen
// over clamping so a buggy caller is surfaced instead of silently corrected).
func (c *Cart) Add(p product.Product, quantity int) error {
	item, err := NewItemFromProduct(p, quantity)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for idx, existing := range c.items {
		if existing.ProductID().IsEqual(item.ProductID()) {
			merged, mergeErr := existing.WithQuantity(existing.Quantity() + quantity)
			if mergeErr != nil {
				return mergeErr
			}
			c.items[idx] = merged
			return nil
		}
	}

	c.items = append(c.items, item)
	return nil
}

// Remove deletes the line with the given product id.
// Removing an absent product is a no-op.
func (c *Cart) Remove(productID kernel.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(productID)
}

// UpdateQuantity sets the quantity of an existing line exactly.
// A quantity of zero or below is equivalent to Remove. Updating a product
// that is not in the cart is a no-op, matching Remove's contract.
func (c *Cart) UpdateQuantity(productID kernel.UUID, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return nil
	}

	for idx, existing := range c.items {
		if existing.ProductID().IsEqual(productID) {
			updated, err := existing.WithQuantity(quantity)
			if err != nil {
				return err
			}
			c.items[idx] = updated
			return nil
		}
	}

	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

// Items returns a copy of the cart lines in insertion order.
// The returned slice is a snapshot; later cart mutations do not affect it.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items) == 0
}

// Totals recomputes the item count (sum of quantities) and the total amount
// (sum of unit price times quantity) from the current lines. Nothing is
// cached across mutations.
func (c *Cart) Totals() (itemCount int, amount kernel.Money) {
	c.mu.Lock()
	defer c.mu.Unlock()

	amount = kernel.ZeroMoney()
	for _, item := range c.items {
		itemCount += item.Quantity()
		amount = amount.Add(item.Subtotal())
	}
	return itemCount, amount
}

func (c *Cart) removeLocked(productID kernel.UUID) {
	for idx, existing := range c.items {
		if existing.ProductID().IsEqual(productID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return
		}
	}
}
