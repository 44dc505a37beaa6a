package queries

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var (
	ErrGetLowestQuotesQueryIsNotConstructed = errors.New(
		"GetLowestQuotesQuery must be created via NewGetLowestQuotesQuery constructor",
	)
)

// GetLowestQuotesQuery retrieves the cheapest quote for each of a set of
// orders in one read. Orders with no quotes simply have no entry in the
// result, and unknown order identifiers are ignored rather than failing the
// whole batch.
//
// Example:
//
//	query, err := NewGetLowestQuotesQuery(orderIDs)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetLowestQuotesQueryHandler(db)
//	lowest, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to aggregate quotes: %w", err)
//	}
//
//	for orderID, best := range lowest {
//	    fmt.Printf("order %s: %s at %s\n", orderID, best.Provider, best.Price)
//	}
type GetLowestQuotesQuery struct {
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetLowestQuotesQuery creates a batch lowest-quote query.
// Requires at least one order identifier, and every identifier must be valid.
func NewGetLowestQuotesQuery(orderIDs []kernel.UUID) (GetLowestQuotesQuery, error) {
	if len(orderIDs) == 0 {
		return GetLowestQuotesQuery{}, errs.NewValueIsRequiredError("orderIDs")
	}

	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return GetLowestQuotesQuery{}, errs.NewValueIsInvalidErrorWithCause("orderIDs", err)
		}
	}

	return GetLowestQuotesQuery{
		orderIDs: orderIDs,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLowestQuotesQueryIsNotConstructed if validation fails.
func (q GetLowestQuotesQuery) Validate() error {
	return q.guard.Validate(ErrGetLowestQuotesQueryIsNotConstructed)
}

// OrderIDs returns the orders whose quotes are aggregated.
func (q GetLowestQuotesQuery) OrderIDs() []kernel.UUID {
	return q.orderIDs
}
