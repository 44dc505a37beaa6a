package commands

import (
	"errors"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
	"freightbid/internal/pkg/guard"
)

var (
	ErrSubmitQuoteCommandIsNotConstructed = errors.New(
		"SubmitQuoteCommand must be created via NewSubmitQuoteCommand constructor",
	)
)

// SubmitQuoteCommand represents a provider's price offer on an order.
// The same command serves first submissions and revisions: the quote store
// upserts on (order, provider), so a repeat submission overwrites the
// provider's earlier offer instead of creating a second one.
//
// The quoteID is only consumed when the submission turns out to be the
// provider's first on this order; on a revision the stored identifier and
// creation timestamp are preserved.
type SubmitQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID           kernel.UUID
	orderID           kernel.UUID
	provider          string
	price             kernel.Price
	estimatedDelivery time.Time
	remarks           string

	guard guard.ConstructorGuard
}

// NewSubmitQuoteCommand creates a command to submit or revise a quote.
// Time-dependent rules (estimated delivery in the future) are enforced by the
// handler against its clock; structural validation happens here.
func NewSubmitQuoteCommand(
	quoteID, orderID kernel.UUID,
	provider string,
	price kernel.Price,
	estimatedDelivery time.Time,
	remarks string,
) (SubmitQuoteCommand, error) {
	cmd := SubmitQuoteCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setQuoteID(quoteID),
		cmd.setOrderID(orderID),
		cmd.setProvider(provider),
		cmd.setPrice(price),
		cmd.setEstimatedDelivery(estimatedDelivery),
	); err != nil {
		return SubmitQuoteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitQuoteCommand) Validate() error {
	return c.guard.Validate(ErrSubmitQuoteCommandIsNotConstructed)
}

// QuoteID returns the identifier for the quote if this is a first submission.
func (c SubmitQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// OrderID returns the identifier of the order being bid on.
func (c SubmitQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Provider returns the submitting provider's identity.
func (c SubmitQuoteCommand) Provider() string {
	return c.provider
}

// Price returns the offered price.
func (c SubmitQuoteCommand) Price() kernel.Price {
	return c.price
}

// EstimatedDelivery returns the promised delivery time.
func (c SubmitQuoteCommand) EstimatedDelivery() time.Time {
	return c.estimatedDelivery
}

// Remarks returns the optional free text accompanying the offer.
func (c SubmitQuoteCommand) Remarks() string {
	return c.remarks
}

func (c *SubmitQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}

func (c *SubmitQuoteCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitQuoteCommand) setProvider(provider string) error {
	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}

	c.provider = provider
	return nil
}

func (c *SubmitQuoteCommand) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *SubmitQuoteCommand) setEstimatedDelivery(estimatedDelivery time.Time) error {
	if estimatedDelivery.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDelivery")
	}

	c.estimatedDelivery = estimatedDelivery
	return nil
}
