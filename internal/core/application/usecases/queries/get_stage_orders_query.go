package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

var ErrGetStageOrdersQueryIsNotConstructed = errors.New(
	"GetStageOrdersQuery must be created via NewGetStageOrdersQuery constructor",
)

// GetStageOrdersQuery retrieves all orders currently in one pipeline stage.
// The kitchen display polls the kitchen stage, the delivery panel the ready
// stage; each call returns a fresh snapshot, there is no subscription.
//
// Example:
//
//	query, err := NewGetStageOrdersQuery(order.StageKitchen)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetStageOrdersQueryHandler(store)
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load kitchen queue: %w", err)
//	}
type GetStageOrdersQuery struct { //nolint:recvcheck //using for validation
	stage order.Stage

	guard guard.ConstructorGuard
}

// NewGetStageOrdersQuery creates a query for one stage's collection.
func NewGetStageOrdersQuery(stage order.Stage) (GetStageOrdersQuery, error) {
	query := GetStageOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setStage(stage); err != nil {
		return GetStageOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStageOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStageOrdersQueryIsNotConstructed)
}

// Stage returns the pipeline stage to list.
func (q GetStageOrdersQuery) Stage() order.Stage {
	return q.stage
}

func (q *GetStageOrdersQuery) setStage(stage order.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	q.stage = stage
	return nil
}

// GetStageOrdersQueryResponse represents one order record for staff views.
// Money travels as decimal strings; TableNumber and Address are mutually
// exclusive, matching the delivery mode.
type GetStageOrdersQueryResponse struct {
	ID           kernel.UUID
	Items        []StageOrderItem
	Total        string
	DeliveryMode string
	TableNumber  int
	Address      *StageOrderAddress
	CreatedAt    time.Time
	ReadyAt      *time.Time
	Stage        string
}

// StageOrderItem is one line of an order as shown on staff displays.
type StageOrderItem struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice string
	Quantity  int
	ImageRef  string
}

// StageOrderAddress is the delivery destination of a delivery order.
type StageOrderAddress struct {
	Street       string
	Number       string
	Neighborhood string
	Complement   string
}
