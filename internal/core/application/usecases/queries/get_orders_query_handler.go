package queries

import (
	"context"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves pages of orders from the database.
// The listing embeds each order's current lowest quote through the batch
// aggregation, so a page costs two statements regardless of its size.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
// Orders are returned newest first; ties on creation time resolve by
// identifier so page boundaries stay stable between requests.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			owner_id,
			warehouse,
			goods,
			delivery_address,
			status,
			selected_provider,
			selected_price,
			selected_at,
			created_at,
			updated_at
		FROM orders
	`
	conditions := make([]string, 0, 2)
	args := make([]any, 0, 4)

	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, int(*status))
	}

	if ownerID := query.OwnerID(); ownerID != nil {
		conditions = append(conditions, "owner_id = ?")
		args = append(args, ownerID.Bytes())
	}

	for i, condition := range conditions {
		if i == 0 {
			sql += " WHERE " + condition
		} else {
			sql += " AND " + condition
		}
	}

	sql += `
		ORDER BY created_at DESC, id
		LIMIT ? OFFSET ?
	`
	args = append(args, query.PageSize(), (query.Page()-1)*query.PageSize())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0, query.PageSize())

	for rows.Next() {
		var (
			id               uuid.UUID
			ownerID          uuid.UUID
			warehouse        string
			goods            string
			deliveryAddress  string
			status           int
			selectedProvider *string
			selectedPrice    *int64
			selectedAt       *time.Time
			createdAt        time.Time
			updatedAt        time.Time
		)

		err = rows.Scan(
			&id, &ownerID, &warehouse, &goods, &deliveryAddress, &status,
			&selectedProvider, &selectedPrice, &selectedAt, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp, buildErr := buildOrderResponse(
			id, ownerID, warehouse, goods, deliveryAddress, status,
			selectedProvider, selectedPrice, selectedAt, createdAt, updatedAt,
		)
		if buildErr != nil {
			return nil, buildErr
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachLowestQuotes(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachLowestQuotes fills in the LowestQuote field for a page of orders
// with one batch aggregation.
func (h GetOrdersQueryHandler) attachLowestQuotes(ctx context.Context, orders []GetOrdersQueryResponse) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	batchQuery, err := NewGetLowestQuotesQuery(ids)
	if err != nil {
		return err
	}

	lowest, err := NewGetLowestQuotesQueryHandler(h.db).Handle(ctx, batchQuery)
	if err != nil {
		return err
	}

	for i := range orders {
		if best, ok := lowest[orders[i].ID]; ok {
			bestCopy := best
			orders[i].LowestQuote = &bestCopy
		}
	}

	return nil
}

// buildOrderResponse assembles a listing entry from scanned columns.
func buildOrderResponse(
	id, ownerID uuid.UUID,
	warehouse, goods, deliveryAddress string,
	status int,
	selectedProvider *string,
	selectedPrice *int64,
	selectedAt *time.Time,
	createdAt, updatedAt time.Time,
) (GetOrdersQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	var selection *SelectionResponse
	if selectedProvider != nil && selectedPrice != nil && selectedAt != nil {
		price, priceErr := kernel.NewPrice(*selectedPrice)
		if priceErr != nil {
			return GetOrdersQueryResponse{}, priceErr
		}

		selection = &SelectionResponse{
			Provider: *selectedProvider,
			Price:    price,
			At:       *selectedAt,
		}
	}

	return GetOrdersQueryResponse{
		ID:              orderID,
		OwnerID:         owner,
		Warehouse:       warehouse,
		Goods:           goods,
		DeliveryAddress: deliveryAddress,
		Status:          order.Status(status),
		Selection:       selection,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}
