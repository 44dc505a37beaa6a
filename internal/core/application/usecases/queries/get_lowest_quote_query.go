// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/guard"
)

var (
	ErrGetLowestQuoteQueryIsNotConstructed = errors.New(
		"GetLowestQuoteQuery must be created via NewGetLowestQuoteQuery constructor",
	)
)

// GetLowestQuoteQuery retrieves the cheapest quote currently standing on an
// order. Ties on price resolve to the earlier submission, then to the
// lexicographically smaller provider, so repeated reads of unchanged data
// always name the same winner.
//
// Example:
//
//	query, err := NewGetLowestQuoteQuery(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetLowestQuoteQueryHandler(db)
//	lowest, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get lowest quote: %w", err)
//	}
//
//	if lowest == nil {
//	    fmt.Println("no quotes yet")
//	} else {
//	    fmt.Printf("best offer: %s at %s\n", lowest.Provider, lowest.Price)
//	}
type GetLowestQuoteQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLowestQuoteQuery creates a query for the cheapest quote on one order.
func NewGetLowestQuoteQuery(orderID kernel.UUID) (GetLowestQuoteQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetLowestQuoteQuery{}, err
	}

	return GetLowestQuoteQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowestQuoteQueryIsNotConstructed if validation fails.
func (q GetLowestQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetLowestQuoteQueryIsNotConstructed)
}

// OrderID returns the order whose quotes are aggregated.
func (q GetLowestQuoteQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetLowestQuoteQueryResponse represents the winning entry of a lowest-quote
// read. Shared between the single-order and batch aggregation paths so both
// report identical shapes.
type GetLowestQuoteQueryResponse struct {
	QuoteID           kernel.UUID
	OrderID           kernel.UUID
	Provider          string
	Price             kernel.Price
	EstimatedDelivery time.Time
	Remarks           string
}
