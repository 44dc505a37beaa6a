package queries

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/order"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

// MaxPageSize caps a single listing page. Larger requests are rejected
// rather than clamped so callers notice the limit.
const MaxPageSize = 100

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves a page of orders, newest first, with optional
// status and owner filters. Pagination is explicit per request; no listing
// state is kept between calls.
//
// Example:
//
//	active := order.Active
//	query, err := NewGetOrdersQuery(1, 20, &active, nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct {
	page     int
	pageSize int
	status   *order.Status
	ownerID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paginated order listing query.
// Page numbering starts at 1. Both filters are optional; nil means no filter.
func NewGetOrdersQuery(page, pageSize int, status *order.Status, ownerID *kernel.UUID) (GetOrdersQuery, error) {
	if page < 1 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("page")
	}

	if pageSize < 1 || pageSize > MaxPageSize {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("pageSize", pageSize, 1, MaxPageSize)
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	if ownerID != nil {
		if err := ownerID.Validate(); err != nil {
			return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("ownerID", err)
		}
	}

	return GetOrdersQuery{
		page:     page,
		pageSize: pageSize,
		status:   status,
		ownerID:  ownerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the 1-based page number.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// PageSize returns the number of orders per page.
func (q GetOrdersQuery) PageSize() int {
	return q.pageSize
}

// Status returns the optional status filter, nil when unfiltered.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// OwnerID returns the optional owner filter, nil when unfiltered.
func (q GetOrdersQuery) OwnerID() *kernel.UUID {
	return q.ownerID
}

// GetOrdersQueryResponse represents one order in a listing, together with
// its winning selection (closed orders) and current lowest quote, when present.
type GetOrdersQueryResponse struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	Warehouse       string
	Goods           string
	DeliveryAddress string
	Status          order.Status
	Selection       *SelectionResponse
	LowestQuote     *GetLowestQuoteQueryResponse
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SelectionResponse represents the winning quote recorded on a closed order.
type SelectionResponse struct {
	Provider string
	Price    kernel.Price
	At       time.Time
}
