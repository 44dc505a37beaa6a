package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to post a new logistics order open
// for competitive bidding. The owner identity is trusted input, verified by
// an upstream collaborator.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, ownerID, "Central warehouse", "Steel pipes", "12 Harbor Rd")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, time.Now)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	ownerID         kernel.UUID
	warehouse       string
	goods           string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new order.
// Validates that both identifiers are valid and the three text fields are
// present; length bounds are enforced by the order aggregate.
func NewCreateOrderCommand(
	orderID, ownerID kernel.UUID,
	warehouse, goods, deliveryAddress string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setOwnerID(ownerID),
		orderCommand.setWarehouse(warehouse),
		orderCommand.setGoods(goods),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the posting user's identity.
func (c CreateOrderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Warehouse returns the pickup warehouse description.
func (c CreateOrderCommand) Warehouse() string {
	return c.warehouse
}

// Goods returns the shipment contents description.
func (c CreateOrderCommand) Goods() string {
	return c.goods
}

// DeliveryAddress returns the destination address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setWarehouse(warehouse string) error {
	if warehouse == "" {
		return errs.NewValueIsRequiredError("warehouse")
	}

	c.warehouse = warehouse
	return nil
}

func (c *CreateOrderCommand) setGoods(goods string) error {
	if goods == "" {
		return errs.NewValueIsRequiredError("goods")
	}

	c.goods = goods
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
