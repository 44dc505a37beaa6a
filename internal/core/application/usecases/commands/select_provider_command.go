package commands

import (
	"errors"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var (
	ErrSelectProviderCommandIsNotConstructed = errors.New(
		"SelectProviderCommand must be created via NewSelectProviderCommand constructor",
	)
)

// SelectProviderCommand represents an owner's decision to award an order to a
// provider at a specific price. The price is echoed back by the owner so the
// handler can detect a stale or tampered selection: the provider's stored
// quote must carry exactly this price at the moment of selection.
type SelectProviderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	ownerID  kernel.UUID
	provider string
	price    kernel.Price

	guard guard.ConstructorGuard
}

// NewSelectProviderCommand creates a command to award an order to a provider.
func NewSelectProviderCommand(
	orderID, ownerID kernel.UUID,
	provider string,
	price kernel.Price,
) (SelectProviderCommand, error) {
	cmd := SelectProviderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setProvider(provider),
		cmd.setPrice(price),
	); err != nil {
		return SelectProviderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SelectProviderCommand) Validate() error {
	return c.guard.Validate(ErrSelectProviderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to award.
func (c SelectProviderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the calling user's identity for the ownership check.
func (c SelectProviderCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Provider returns the winning provider's identity.
func (c SelectProviderCommand) Provider() string {
	return c.provider
}

// Price returns the price the owner saw when making the selection.
func (c SelectProviderCommand) Price() kernel.Price {
	return c.price
}

func (c *SelectProviderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SelectProviderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}

	c.ownerID = ownerID
	return nil
}

func (c *SelectProviderCommand) setProvider(provider string) error {
	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}

	c.provider = provider
	return nil
}

func (c *SelectProviderCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}
