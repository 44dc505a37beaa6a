package ports

import (
	"context"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The order row is the single point of contention per order: all concurrent
// close/select/edit operations coordinate through the conditional write in
// UpdateIfActive rather than through application-level locks.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForBidding retrieves an order and, when called inside a transaction,
	// holds a share lock on its row until commit. A concurrent close/select
	// cannot commit while the lock is held, which closes the race between
	// reading the order's status and writing a quote against it.
	GetForBidding(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForSelection retrieves an order and, when called inside a
	// transaction, holds an exclusive lock on its row until commit. The lock
	// conflicts with GetForBidding's share lock, so a quote read that follows
	// it cannot interleave with a provider's in-flight revision: the revision
	// either committed before this read or waits for this transaction. Used
	// when a selection must record exactly the price stored at commit time.
	GetForSelection(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateIfActive persists changes to an order only if its stored status
	// is still Active (compare-and-swap on the status column). When the
	// precondition no longer holds the write affects no rows and
	// order.ErrOrderClosed is returned; a missing row yields a not-found
	// error. Exactly one of a set of racing close/select calls succeeds.
	UpdateIfActive(ctx context.Context, aggregate *order.Order) error
}
