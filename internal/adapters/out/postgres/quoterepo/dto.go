// Package quoterepo provides data transfer objects and mapping functions for quote persistence.
// This package implements the repository pattern for the quote domain aggregate, handling
// the conversion between domain entities and database representations.
package quoterepo

import (
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteDTO represents the database structure for persisting quotes.
// The composite unique index on (order_id, provider) enforces the one-quote-
// per-provider-per-order rule at the storage level and backs the upsert the
// repository performs on resubmission.
//
// Timestamps are owned by the domain layer, so GORM's automatic tracking
// is disabled on them.
type QuoteDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_quotes_order_provider,priority:1"`
	Provider          string    `gorm:"size:128;uniqueIndex:idx_quotes_order_provider,priority:2"`
	Price             int64
	EstimatedDelivery time.Time
	Remarks           string
	CreatedAt         time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for quote entities.
// Overrides GORM's default naming convention to use "quotes".
func (QuoteDTO) TableName() string {
	return "quotes"
}

// fromDomain converts a quote domain aggregate to its database representation.
func fromDomain(aggregate *quote.Quote) QuoteDTO {
	return QuoteDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		Provider:          aggregate.Provider(),
		Price:             aggregate.Price().Amount(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		Remarks:           aggregate.Remarks(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a quote domain aggregate.
// Uses RestoreQuote so historical quotes load regardless of whether their
// estimated delivery has since passed.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return quote.RestoreQuote(
		id,
		orderID,
		dto.Provider,
		price,
		dto.EstimatedDelivery,
		dto.Remarks,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
