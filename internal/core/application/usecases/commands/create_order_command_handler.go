package commands

import (
	"context"

	"freightbid/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for posting new orders.
// New orders start in Active status, open for quote submissions.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and a clock for timestamps.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// Builds the order aggregate in Active status and persists it transactionally.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OwnerID(),
		cmd.Warehouse(),
		cmd.Goods(),
		cmd.DeliveryAddress(),
		h.clock(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
