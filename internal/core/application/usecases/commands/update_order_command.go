package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNoFieldsToUpdate = errors.New("at least one field must be supplied for update")
)

// UpdateOrderCommand represents an owner's request to edit an order's
// free-text fields while bidding is open. Nil fields are left untouched,
// making partial updates explicit instead of relying on loosely typed payloads.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	ownerID         kernel.UUID
	warehouse       *string
	goods           *string
	deliveryAddress *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an active order.
// At least one of the three field pointers must be non-nil.
func NewUpdateOrderCommand(
	orderID, ownerID kernel.UUID,
	warehouse, goods, deliveryAddress *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		warehouse:       warehouse,
		goods:           goods,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	if warehouse == nil && goods == nil && deliveryAddress == nil {
		return UpdateOrderCommand{}, ErrNoFieldsToUpdate
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the calling user's identity for the ownership check.
func (c UpdateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Warehouse returns the new warehouse value, or nil to keep the current one.
func (c UpdateOrderCommand) Warehouse() *string {
	return c.warehouse
}

// Goods returns the new goods value, or nil to keep the current one.
func (c UpdateOrderCommand) Goods() *string {
	return c.goods
}

// DeliveryAddress returns the new address value, or nil to keep the current one.
func (c UpdateOrderCommand) DeliveryAddress() *string {
	return c.deliveryAddress
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}

	c.ownerID = ownerID
	return nil
}
