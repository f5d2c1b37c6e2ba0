package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/cart"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents an order record: an immutable snapshot of a cart taken
// exactly once at submission time. It is the aggregate root that manages the
// record's lifecycle through the kitchen pipeline.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, stable across stage transitions
//   - Must have a non-empty item snapshot, never mutated after creation
//   - Total equals the recomputed sum of unit price times quantity over the snapshot
//   - Exactly one of table number / address is populated, matching the delivery mode
//   - Stage transitions follow defined business rules
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. The only mutable state is the
// stage and the readyAt timestamp stamped on stage transition.
type Order struct {
	// id is the unique identifier for the order record
	id kernel.UUID

	// items is the frozen cart snapshot
	items []cart.Item

	// total is the sum of unit price times quantity over items
	total kernel.Money

	// mode states how the order is fulfilled
	mode DeliveryMode

	// tableNumber is set iff mode is ModeTable
	tableNumber int

	// address is set iff mode is ModeDelivery
	address *Address

	// createdAt is the submission timestamp
	createdAt time.Time

	// readyAt is stamped when the kitchen marks the order ready
	readyAt *time.Time

	// stage is the current position in the pipeline
	stage Stage

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new order record from a cart snapshot. This is the
// order builder: it deep-copies the items so later cart mutation cannot
// affect the record, recomputes the total, and starts the record in the
// kitchen stage.
//
// Parameters:
//   - id: Unique identifier for the record (must be valid)
//   - items: Cart snapshot (must be non-empty, every item constructed)
//   - mode: ModeTable or ModeDelivery
//   - tableNumber: Required positive number when mode is ModeTable, must be zero otherwise
//   - address: Required when mode is ModeDelivery, must be nil otherwise
//   - createdAt: Submission timestamp (must not be zero)
//
// Returns a validation error if any parameter violates the invariants.
// The input slice is not retained and the caller's cart is not mutated;
// clearing the cart after a successful build is the caller's concern.
func NewOrder(
	id kernel.UUID,
	items []cart.Item,
	mode DeliveryMode,
	tableNumber int,
	address *Address,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		stage:         StageKitchen,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setFulfillment(mode, tableNumber, address),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.total = totalOf(o.items)
	return o, nil
}

// RestoreOrder reconstructs an order record from persistence without
// changing its stage. The same invariants as NewOrder apply, plus
// consistency between the stage and the readyAt timestamp.
func RestoreOrder(
	id kernel.UUID,
	items []cart.Item,
	mode DeliveryMode,
	tableNumber int,
	address *Address,
	createdAt time.Time,
	readyAt *time.Time,
	stage Stage,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setFulfillment(mode, tableNumber, address),
		o.setCreatedAt(createdAt),
		o.setStage(stage, readyAt),
	); err != nil {
		return nil, err
	}

	o.total = totalOf(o.items)
	return o, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Items returns a copy of the frozen item snapshot.
func (o *Order) Items() []cart.Item {
	out := make([]cart.Item, len(o.items))
	copy(out, o.items)
	return out
}

// Total returns the order total, equal to the recomputed sum of the snapshot.
func (o *Order) Total() kernel.Money {
	return o.total
}

// DeliveryMode returns how the order is fulfilled.
func (o *Order) DeliveryMode() DeliveryMode {
	return o.mode
}

// TableNumber returns the table number. Only meaningful when
// DeliveryMode() is ModeTable; zero otherwise.
func (o *Order) TableNumber() int {
	return o.tableNumber
}

// Address returns the delivery address, or nil when the order is served at
// a table.
func (o *Order) Address() *Address {
	return o.address
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ReadyAt returns the timestamp stamped when the kitchen marked the order
// ready, or nil while the order is still in the kitchen.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// Stage returns the current pipeline stage.
func (o *Order) Stage() Stage {
	return o.stage
}

// MarkReady transitions the order from the kitchen to the ready stage and
// stamps the readyAt timestamp.
//
// Business rules:
//   - The order must be in the Kitchen stage
//   - readyAt is stamped exactly once, at transition time
//
// Returns an error if the stage transition is not allowed.
func (o *Order) MarkReady(now time.Time) error {
	newStage, err := o.stage.MarkReady()
	if err != nil {
		return err
	}

	o.stage = newStage
	o.readyAt = &now
	return nil
}

// Complete marks the order as delivered (served at the table or handed to
// the courier). Delivered is terminal: the record is discarded by the
// store, not archived.
//
// Returns an error if the order is not in the Ready stage.
func (o *Order) Complete() error {
	newStage, err := o.stage.Complete()
	if err != nil {
		return err
	}

	o.stage = newStage
	return nil
}

func totalOf(items []cart.Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []cart.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("cart is empty"))
	}

	copied := make([]cart.Item, len(items))
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		copied[idx] = item
	}

	o.items = copied
	return nil
}

func (o *Order) setFulfillment(mode DeliveryMode, tableNumber int, address *Address) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	switch mode {
	case ModeTable:
		if tableNumber <= 0 {
			return errs.NewValueIsRequiredError("tableNumber")
		}
		if address != nil {
			return errs.NewValueIsInvalidErrorWithCause(
				"address",
				errors.New("table orders must not carry a delivery address"),
			)
		}
	case ModeDelivery:
		if address == nil {
			return errs.NewValueIsRequiredError("address")
		}
		if err := address.Validate(); err != nil {
			return err
		}
		if tableNumber != 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"tableNumber",
				fmt.Errorf("delivery orders must not carry a table number, got %d", tableNumber),
			)
		}
	}

	o.mode = mode
	o.tableNumber = tableNumber
	o.address = address
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStage(stage Stage, readyAt *time.Time) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	if err := stage.ValidateCanHaveReadyAt(readyAt != nil); err != nil {
		return err
	}

	o.stage = stage
	o.readyAt = readyAt
	return nil
}
