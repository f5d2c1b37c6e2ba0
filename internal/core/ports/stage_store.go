package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// StageStore defines the persistence contract for stage-partitioned order
// collections. Each stage maps to an ordered list of order records; records
// preserve their insertion order within a stage.
//
// Order ids are unique across all stages, not just within one. There is no
// cross-stage transaction: callers moving a record between stages must
// insert into the destination before removing from the source, so a crash
// between the two writes leaves a duplicate rather than a lost order.
type StageStore interface {
	// List retrieves all orders in the given stage, oldest first.
	// An empty or never-written stage yields an empty slice.
	List(ctx context.Context, stage order.Stage) ([]*order.Order, error)

	// Get retrieves a single order by id from the given stage.
	// Returns an object-not-found error when no record with that id
	// exists in the stage.
	Get(ctx context.Context, stage order.Stage, id kernel.UUID) (*order.Order, error)

	// Insert appends an order to the end of the stage's collection.
	// Returns an object-already-exists error when a record with the same
	// id is present in any stage.
	Insert(ctx context.Context, stage order.Stage, aggregate *order.Order) error

	// RemoveByID deletes the order with the given id from the stage.
	// Returns an object-not-found error when no record with that id
	// exists in the stage.
	RemoveByID(ctx context.Context, stage order.Stage, id kernel.UUID) error

	// Move transfers the aggregate from one stage to the next, writing the
	// destination collection before the source so a crash in between
	// duplicates the record instead of losing it. The aggregate must
	// already carry the destination stage. Returns an object-not-found
	// error when the id is not in the source stage.
	Move(ctx context.Context, from order.Stage, to order.Stage, aggregate *order.Order) error
}
