package commands

import (
	"context"
	"errors"
)

// ErrNotOrderOwner is returned when a caller attempts to mutate an order
// posted by a different user. Identity itself is trusted input; only the
// ownership relation is checked here.
var ErrNotOrderOwner = errors.New("order belongs to a different owner")

// UpdateOrderCommandHandler handles edits to an active order's text fields.
// Edits are rejected once the order is closed, and persisted with the same
// conditional write the close path uses, so an edit racing a close cannot
// land on a closed order.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewUpdateOrderCommandHandler creates a handler for order edit operations.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order edit command.
// Returns a not-found error for unknown orders, ErrNotOrderOwner when the
// caller does not own the order, and order.ErrOrderClosed when bidding has
// already ended (including the case where a concurrent close wins the race).
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !existing.IsOwnedBy(cmd.OwnerID()) {
		return ErrNotOrderOwner
	}

	if err = existing.UpdateDetails(cmd.Warehouse(), cmd.Goods(), cmd.DeliveryAddress(), h.clock()); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfActive(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
