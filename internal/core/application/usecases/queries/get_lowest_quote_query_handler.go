package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowestQuoteQueryHandler retrieves the cheapest quote on an order from the database.
// The ordering columns (price, created_at, provider) match the batch handler
// exactly, so the single and batch paths can never disagree on a winner.
type GetLowestQuoteQueryHandler struct {
	db *gorm.DB
}

// NewGetLowestQuoteQueryHandler creates a handler for lowest-quote reads.
// Requires a GORM database connection for query execution.
func NewGetLowestQuoteQueryHandler(db *gorm.DB) GetLowestQuoteQueryHandler {
	return GetLowestQuoteQueryHandler{db: db}
}

// Handle executes the query for the order's cheapest quote.
// Returns a not-found error for an unknown order and nil (no error) for an
// order that has no quotes yet.
func (h GetLowestQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetLowestQuoteQuery,
) (*GetLowestQuoteQueryResponse, error) {
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

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			provider,
			price,
			estimated_delivery,
			remarks
		FROM quotes
		WHERE order_id = ?
		ORDER BY price, created_at, provider
		LIMIT 1
	`, query.OrderID().Bytes()).Row()

	var (
		id                uuid.UUID
		orderID           uuid.UUID
		provider          string
		price             int64
		estimatedDelivery time.Time
		remarks           string
	)

	err = row.Scan(&id, &orderID, &provider, &price, &estimatedDelivery, &remarks)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return buildLowestQuoteResponse(id, orderID, provider, price, estimatedDelivery, remarks)
}

// buildLowestQuoteResponse assembles a response from scanned columns,
// restoring the kernel value objects on the way out.
func buildLowestQuoteResponse(
	id, orderID uuid.UUID,
	provider string,
	price int64,
	estimatedDelivery time.Time,
	remarks string,
) (*GetLowestQuoteQueryResponse, error) {
	quoteID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	oID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return nil, err
	}

	quotePrice, err := kernel.NewPrice(price)
	if err != nil {
		return nil, err
	}

	return &GetLowestQuoteQueryResponse{
		QuoteID:           quoteID,
		OrderID:           oID,
		Provider:          provider,
		Price:             quotePrice,
		EstimatedDelivery: estimatedDelivery,
		Remarks:           remarks,
	}, nil
}
