package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var (
	ErrGetQuotesForOrderQueryIsNotConstructed = errors.New(
		"GetQuotesForOrderQuery must be created via NewGetQuotesForOrderQuery constructor",
	)
)

// GetQuotesForOrderQuery retrieves every quote standing on an order,
// cheapest first. Works on open and closed orders alike, so owners can
// review the full bidding history after a winner was chosen.
type GetQuotesForOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetQuotesForOrderQuery creates a query for all quotes on one order.
func NewGetQuotesForOrderQuery(orderID kernel.UUID) (GetQuotesForOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetQuotesForOrderQuery{}, err
	}

	return GetQuotesForOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetQuotesForOrderQueryIsNotConstructed if validation fails.
func (q GetQuotesForOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetQuotesForOrderQueryIsNotConstructed)
}

// OrderID returns the order whose quotes are listed.
func (q GetQuotesForOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetQuotesForOrderQueryResponse represents one quote in an order's bidding list.
type GetQuotesForOrderQueryResponse struct {
	QuoteID           kernel.UUID
	Provider          string
	Price             kernel.Price
	EstimatedDelivery time.Time
	Remarks           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
