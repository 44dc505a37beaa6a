package http

import (
	"time"

	"freightbid/internal/core/application/usecases/queries"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	Warehouse       string `json:"warehouse"`
	Goods           string `json:"goods"`
	DeliveryAddress string `json:"delivery_address"`
}

// CreateOrderResponse returns the server-generated identifier of a new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/orders/:id.
// Absent fields keep their current values; at least one must be present.
type UpdateOrderRequest struct {
	Warehouse       *string `json:"warehouse,omitempty"`
	Goods           *string `json:"goods,omitempty"`
	DeliveryAddress *string `json:"delivery_address,omitempty"`
}

// SelectProviderRequest is the body of POST /api/v1/orders/:id/select.
// The price must match the provider's current quote exactly.
type SelectProviderRequest struct {
	Provider string `json:"provider"`
	Price    int64  `json:"price"`
}

// SubmitQuoteRequest is the body of POST /api/v1/orders/:id/quotes.
// Resubmitting for the same order revises the provider's earlier quote.
type SubmitQuoteRequest struct {
	Price             int64     `json:"price"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
	Remarks           string    `json:"remarks,omitempty"`
}

// Quote represents a quote in API responses.
type Quote struct {
	ID                string    `json:"id"`
	Provider          string    `json:"provider"`
	Price             int64     `json:"price"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
	Remarks           string    `json:"remarks,omitempty"`
	CreatedAt         time.Time `json:"created_at,omitzero"`
	UpdatedAt         time.Time `json:"updated_at,omitzero"`
}

// Selection represents the winning quote recorded on a closed order.
type Selection struct {
	Provider string    `json:"provider"`
	Price    int64     `json:"price"`
	At       time.Time `json:"at"`
}

// Order represents an order in API responses. LowestQuote is present while at
// least one quote exists; Selection is present after a provider was chosen.
type Order struct {
	ID              string     `json:"id"`
	OwnerID         string     `json:"owner_id"`
	Warehouse       string     `json:"warehouse"`
	Goods           string     `json:"goods"`
	DeliveryAddress string     `json:"delivery_address"`
	Status          string     `json:"status"`
	Selection       *Selection `json:"selection,omitempty"`
	LowestQuote     *Quote     `json:"lowest_quote,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func quoteFromLowestResponse(resp *queries.GetLowestQuoteQueryResponse) *Quote {
	if resp == nil {
		return nil
	}
	return &Quote{
		ID:                resp.QuoteID.String(),
		Provider:          resp.Provider,
		Price:             resp.Price.Amount(),
		EstimatedDelivery: resp.EstimatedDelivery,
		Remarks:           resp.Remarks,
	}
}

func quoteFromOrderResponse(resp queries.GetQuotesForOrderQueryResponse) Quote {
	return Quote{
		ID:                resp.QuoteID.String(),
		Provider:          resp.Provider,
		Price:             resp.Price.Amount(),
		EstimatedDelivery: resp.EstimatedDelivery,
		Remarks:           resp.Remarks,
		CreatedAt:         resp.CreatedAt,
		UpdatedAt:         resp.UpdatedAt,
	}
}

func orderFromResponse(resp queries.GetOrdersQueryResponse) Order {
	o := Order{
		ID:              resp.ID.String(),
		OwnerID:         resp.OwnerID.String(),
		Warehouse:       resp.Warehouse,
		Goods:           resp.Goods,
		DeliveryAddress: resp.DeliveryAddress,
		Status:          resp.Status.String(),
		LowestQuote:     quoteFromLowestResponse(resp.LowestQuote),
		CreatedAt:       resp.CreatedAt,
		UpdatedAt:       resp.UpdatedAt,
	}

	if resp.Selection != nil {
		o.Selection = &Selection{
			Provider: resp.Selection.Provider,
			Price:    resp.Selection.Price.Amount(),
			At:       resp.Selection.At,
		}
	}

	return o
}
