// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexing
// for efficient querying by owner and bidding status. The three selection
// columns are populated together when a winning quote is chosen and stay
// NULL for orders closed without a selection.
//
// Timestamps are owned by the domain layer, so GORM's automatic tracking
// is disabled on them.
type OrderDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID          uuid.UUID `gorm:"type:uuid;index"`
	Warehouse        string
	Goods            string
	DeliveryAddress  string
	Status           int `gorm:"index"`
	SelectedProvider *string
	SelectedPrice    *int64
	SelectedAt       *time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional winning selection.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		OwnerID:         aggregate.OwnerID().Bytes(),
		Warehouse:       aggregate.Warehouse(),
		Goods:           aggregate.Goods(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		Status:          int(aggregate.Status()),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	if selection := aggregate.Selection(); selection != nil {
		provider := selection.Provider
		price := selection.Price.Amount()
		at := selection.At
		dto.SelectedProvider = &provider
		dto.SelectedPrice = &price
		dto.SelectedAt = &at
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and selection using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var selection *order.Selection
	if dto.SelectedProvider != nil && dto.SelectedPrice != nil && dto.SelectedAt != nil {
		price, priceErr := kernel.NewPrice(*dto.SelectedPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		selection = &order.Selection{
			Provider: *dto.SelectedProvider,
			Price:    price,
			At:       *dto.SelectedAt,
		}
	}

	return order.RestoreOrder(
		id,
		ownerID,
		dto.Warehouse,
		dto.Goods,
		dto.DeliveryAddress,
		order.Status(dto.Status),
		selection,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
