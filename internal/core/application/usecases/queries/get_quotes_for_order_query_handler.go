package queries

import (
	"context"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetQuotesForOrderQueryHandler retrieves an order's full quote list from the database.
// Results are sorted cheapest first with the shared tie-break ordering, so
// the first entry is always the quote the lowest-quote aggregator would report.
type GetQuotesForOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetQuotesForOrderQueryHandler creates a handler for order quote listings.
// Requires a GORM database connection for query execution.
func NewGetQuotesForOrderQueryHandler(db *gorm.DB) GetQuotesForOrderQueryHandler {
	return GetQuotesForOrderQueryHandler{db: db}
}

// Handle executes the query for all quotes on the order.
// Returns a not-found error for an unknown order and an empty slice for an
// order without quotes.
func (h GetQuotesForOrderQueryHandler) Handle(
	ctx context.Context,
	query GetQuotesForOrderQuery,
) ([]GetQuotesForOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Scan(&exists).Error
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			provider,
			price,
			estimated_delivery,
			remarks,
			created_at,
			updated_at
		FROM quotes
		WHERE order_id = ?
		ORDER BY price, created_at, provider
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]GetQuotesForOrderQueryResponse, 0)

	for rows.Next() {
		var (
			id                uuid.UUID
			provider          string
			price             int64
			estimatedDelivery time.Time
			remarks           string
			createdAt         time.Time
			updatedAt         time.Time
		)

		err = rows.Scan(&id, &provider, &price, &estimatedDelivery, &remarks, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}

		quoteID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		quotePrice, priceErr := kernel.NewPrice(price)
		if priceErr != nil {
			return nil, priceErr
		}

		quotes = append(quotes, GetQuotesForOrderQueryResponse{
			QuoteID:           quoteID,
			Provider:          provider,
			Price:             quotePrice,
			EstimatedDelivery: estimatedDelivery,
			Remarks:           remarks,
			CreatedAt:         createdAt,
			UpdatedAt:         updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return quotes, nil
}
