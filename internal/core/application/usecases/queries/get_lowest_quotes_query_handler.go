package queries

import (
	"context"
	"time"

	"freightbid/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowestQuotesQueryHandler aggregates the cheapest quote per order across
// a whole batch in a single statement. DISTINCT ON keeps the first row per
// order under the shared ordering (price, created_at, provider), which is the
// same winner the single-order handler reports.
type GetLowestQuotesQueryHandler struct {
	db *gorm.DB
}

// NewGetLowestQuotesQueryHandler creates a handler for batch lowest-quote reads.
// Requires a GORM database connection for query execution.
func NewGetLowestQuotesQueryHandler(db *gorm.DB) GetLowestQuotesQueryHandler {
	return GetLowestQuotesQueryHandler{db: db}
}

// Handle executes the batch aggregation.
// The result maps each order identifier to its cheapest quote; orders with no
// quotes (or unknown identifiers) have no entry.
func (h GetLowestQuotesQueryHandler) Handle(
	ctx context.Context,
	query GetLowestQuotesQuery,
) (map[kernel.UUID]GetLowestQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(query.OrderIDs()))
	for _, id := range query.OrderIDs() {
		ids = append(ids, id.Bytes())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (order_id)
			id,
			order_id,
			provider,
			price,
			estimated_delivery,
			remarks
		FROM quotes
		WHERE order_id IN ?
		ORDER BY order_id, price, created_at, provider
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lowest := make(map[kernel.UUID]GetLowestQuoteQueryResponse, len(ids))

	for rows.Next() {
		var (
			id                uuid.UUID
			orderID           uuid.UUID
			provider          string
			price             int64
			estimatedDelivery time.Time
			remarks           string
		)

		if err = rows.Scan(&id, &orderID, &provider, &price, &estimatedDelivery, &remarks); err != nil {
			return nil, err
		}

		resp, buildErr := buildLowestQuoteResponse(id, orderID, provider, price, estimatedDelivery, remarks)
		if buildErr != nil {
			return nil, buildErr
		}

		lowest[resp.OrderID] = *resp
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lowest, nil
}
