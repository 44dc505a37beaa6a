package ports

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quotes.
// Quote rows are independent across providers; the only contention is with
// the parent order's status, handled by the caller's transaction scope.
type QuoteRepository interface {
	// Upsert stores a provider's quote, keyed by (order, provider).
	// A first submission inserts a new row; a repeat submission from the same
	// provider overwrites price, estimated delivery, remarks, and the update
	// timestamp in place, preserving the row's identifier and creation time.
	Upsert(ctx context.Context, aggregate *quote.Quote) error

	// GetByOrderAndProvider retrieves the single quote a provider has on an
	// order, or a not-found error if the provider has not bid.
	GetByOrderAndProvider(ctx context.Context, orderID kernel.UUID, provider string) (*quote.Quote, error)

	// GetAllByOrder retrieves every quote on an order, cheapest first
	// (ties broken by earlier creation time, then provider identity).
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*quote.Quote, error)

	// RemoveOrphans deletes quotes whose order no longer exists and reports
	// how many rows were removed. Used by the reconciliation job to enforce
	// that a quote's lifetime is bounded by its order's existence.
	RemoveOrphans(ctx context.Context) (int64, error)
}
