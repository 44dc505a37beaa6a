package quote

import (
	"errors"
	"fmt"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
)

const (
	// ProviderMaxLength bounds the provider identity string.
	ProviderMaxLength = 128

	// RemarksMaxLength bounds the optional free-text remarks.
	RemarksMaxLength = 500
)

var (
	// ErrQuoteIsNotConstructed is returned when a Quote instance was not created through
	// the NewQuote or RestoreQuote factory methods.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote")

	// ErrDeliveryNotInFuture is returned when the estimated delivery time is
	// not strictly after the submission time.
	ErrDeliveryNotInFuture = errors.New("estimated delivery must be in the future")
)

// Quote is a price and delivery-time offer submitted by one provider against
// one order. At most one quote exists per (order, provider) pair: a repeat
// submission from the same provider revises the existing quote in place,
// preserving its identity and creation timestamp.
//
// Quote invariants:
//   - Valid quote and order identifiers
//   - Non-empty provider identity, bounded in length
//   - Positive price
//   - Estimated delivery strictly in the future at submission or revision time
type Quote struct {
	// id is the unique identifier for the quote, stable across revisions
	id kernel.UUID

	// orderID references the order the quote bids on
	orderID kernel.UUID

	// provider is the submitting provider's identity, unique per order
	provider string

	// price is the offered price (positive, in minor units)
	price kernel.Price

	// estimatedDelivery is the promised delivery time
	estimatedDelivery time.Time

	// remarks is optional free text accompanying the offer
	remarks string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the quote was created via a factory method
	isConstructed bool
}

// NewQuote creates a new Quote for a provider's first submission on an order.
//
// Parameters:
//   - id: Unique identifier for the quote
//   - orderID: The order being bid on
//   - provider: Trusted provider identity supplied by the caller
//   - price: Offered price, must be positive
//   - estimatedDelivery: Must be strictly after now
//   - remarks: Optional free text, bounded by RemarksMaxLength
//   - now: Submission timestamp from the caller's clock
func NewQuote(
	id, orderID kernel.UUID,
	provider string,
	price kernel.Price,
	estimatedDelivery time.Time,
	remarks string,
	now time.Time,
) (*Quote, error) {
	quote := &Quote{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		quote.setID(id),
		quote.setOrderID(orderID),
		quote.setProvider(provider),
		quote.setPrice(price),
		quote.setEstimatedDelivery(estimatedDelivery, now),
		quote.setRemarks(remarks),
	); err != nil {
		return nil, err
	}

	return quote, nil
}

// RestoreQuote reconstructs a Quote from persistence. The future-delivery rule
// is a submission-time rule and is deliberately not re-checked here: a quote
// whose promised date has since passed is still a valid historical record.
func RestoreQuote(
	id, orderID kernel.UUID,
	provider string,
	price kernel.Price,
	estimatedDelivery time.Time,
	remarks string,
	createdAt, updatedAt time.Time,
) (*Quote, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}
	if provider == "" {
		return nil, errs.NewValueIsRequiredError("provider")
	}

	return &Quote{
		id:                id,
		orderID:           orderID,
		provider:          provider,
		price:             price,
		estimatedDelivery: estimatedDelivery,
		remarks:           remarks,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Quote instance was properly constructed through a factory method.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}

	return nil
}

// IsEqual compares two quotes by their unique identifiers.
func (q *Quote) IsEqual(other *Quote) bool {
	return other != nil && q.id.IsEqual(other.id)
}

// ID returns the quote's unique identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// OrderID returns the identifier of the order the quote bids on.
func (q *Quote) OrderID() kernel.UUID {
	return q.orderID
}

// Provider returns the submitting provider's identity.
func (q *Quote) Provider() string {
	return q.provider
}

// Price returns the offered price.
func (q *Quote) Price() kernel.Price {
	return q.price
}

// EstimatedDelivery returns the promised delivery time.
func (q *Quote) EstimatedDelivery() time.Time {
	return q.estimatedDelivery
}

// Remarks returns the optional free text accompanying the offer.
func (q *Quote) Remarks() string {
	return q.remarks
}

// CreatedAt returns the first-submission timestamp, stable across revisions.
func (q *Quote) CreatedAt() time.Time {
	return q.createdAt
}

// UpdatedAt returns the timestamp of the latest revision.
func (q *Quote) UpdatedAt() time.Time {
	return q.updatedAt
}

// Revise overwrites the quote's offer in place for a repeat submission from
// the same provider. The identity and creation timestamp are preserved; only
// price, estimated delivery, remarks, and the update timestamp change.
func (q *Quote) Revise(price kernel.Price, estimatedDelivery time.Time, remarks string, now time.Time) error {
	if err := errors.Join(
		q.setPrice(price),
		q.setEstimatedDelivery(estimatedDelivery, now),
		q.setRemarks(remarks),
	); err != nil {
		return err
	}

	q.updatedAt = now
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("orderID: %w", err)
	}
	q.orderID = orderID
	return nil
}

func (q *Quote) setProvider(provider string) error {
	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}
	if len(provider) > ProviderMaxLength {
		return errs.NewValueIsOutOfRangeError("provider", len(provider), 1, ProviderMaxLength)
	}
	q.provider = provider
	return nil
}

func (q *Quote) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	q.price = price
	return nil
}

func (q *Quote) setEstimatedDelivery(estimatedDelivery, now time.Time) error {
	if !estimatedDelivery.After(now) {
		return ErrDeliveryNotInFuture
	}
	q.estimatedDelivery = estimatedDelivery
	return nil
}

func (q *Quote) setRemarks(remarks string) error {
	if len(remarks) > RemarksMaxLength {
		return errs.NewValueIsOutOfRangeError("remarks", len(remarks), 0, RemarksMaxLength)
	}
	q.remarks = remarks
	return nil
}
