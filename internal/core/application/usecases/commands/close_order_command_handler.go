package commands

import (
	"context"
)

// CloseOrderCommandHandler handles the manual close of an order.
//
// Closing is exclusive: the status update is a compare-and-swap conditioned
// on the order still being Active, so of two racing close/select requests
// exactly one succeeds and the other observes order.ErrOrderClosed. A failed
// swap is reported as a conflict, never retried here.
type CloseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCloseOrderCommandHandler creates a handler for manual close operations.
func NewCloseOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the manual close command.
// After this succeeds the order is Closed with no winning selection.
func (h CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) error {
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

	if err = existing.Close(h.clock()); err != nil {
		return err
	}

	if err = orderRepo.UpdateIfActive(ctx, existing); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
