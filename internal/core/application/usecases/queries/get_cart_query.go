package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
	ErrSessionIDIsRequired = errors.New("session id is required")
)

// GetCartQuery retrieves a session's cart contents and totals.
type GetCartQuery struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for a session's cart.
func NewGetCartQuery(sessionID string) (GetCartQuery, error) {
	query := GetCartQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSessionID(sessionID); err != nil {
		return GetCartQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// SessionID returns the client session the cart belongs to.
func (q GetCartQuery) SessionID() string {
	return q.sessionID
}

func (q *GetCartQuery) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	q.sessionID = sessionID
	return nil
}

// GetCartQueryResponse represents a cart for display: its lines in
// insertion order plus the running totals. ItemCount sums quantities, not
// lines, matching what the cart badge shows.
type GetCartQueryResponse struct {
	Items     []CartLineItem
	ItemCount int
	Total     string
}

// CartLineItem is one product line of the cart.
type CartLineItem struct {
	ProductID kernel.UUID
	Name      string
	UnitPrice string
	Quantity  int
	Subtotal  string
	ImageRef  string
}
