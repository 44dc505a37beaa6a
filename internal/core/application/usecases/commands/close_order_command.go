package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var (
	ErrCloseOrderCommandIsNotConstructed = errors.New(
		"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
	)
)

// CloseOrderCommand represents an owner's request to end bidding on an order
// manually, without picking a winner. The selection fields remain empty.
type CloseOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseOrderCommand creates a command to close an order manually.
func NewCloseOrderCommand(orderID, ownerID kernel.UUID) (CloseOrderCommand, error) {
	cmd := CloseOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return CloseOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to close.
func (c CloseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the calling user's identity for the ownership check.
func (c CloseOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *CloseOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CloseOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}

	c.ownerID = ownerID
	return nil
}
