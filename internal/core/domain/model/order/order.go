package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"freightbid/internal/core/domain/model/kernel"
	"freightbid/internal/pkg/errs"
)

// DetailMaxLength bounds the free-text fields of an order (warehouse, goods,
// delivery address). Longer values are rejected at construction and on edit.
const DetailMaxLength = 500

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderClosed is returned when a mutation (edit, close, selection, or
	// quote submission) targets an order whose bidding has already ended.
	// A lost compare-and-swap on the status column surfaces as this same
	// error: from the caller's point of view both mean "too late", and the
	// caller must refresh state before retrying.
	ErrOrderClosed = errors.New("order is already closed")

	// ErrSelectionIncomplete is returned when a persisted order carries only
	// part of a winning selection (provider, price, and timestamp must be set
	// together or not at all).
	ErrSelectionIncomplete = errors.New("selection fields must be set together")
)

// Selection records the winning quote chosen by the order's owner.
// A Selection is only ever present on a Closed order; manual closes leave it nil.
type Selection struct {
	// Provider is the winning provider's identity.
	Provider string

	// Price is the winning quote's price at the moment of selection.
	Price kernel.Price

	// At is the moment the owner made the selection.
	At time.Time
}

// Order represents a shipment request posted by an owner, open for competitive
// bidding by logistics providers until closed. It is the aggregate root that
// manages the order lifecycle and is the single point of contention for all
// concurrent close/select/edit operations.
//
// Order follows these invariants:
//   - Must have valid unique and owner identifiers
//   - Warehouse, goods, and delivery address are non-empty and bounded in length
//   - Status is Active or Closed; a winning selection implies Closed
//   - Can only be created through NewOrder or RestoreOrder
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order, immutable after creation
	id kernel.UUID

	// ownerID identifies the owning user, immutable after creation
	ownerID kernel.UUID

	// warehouse is the pickup warehouse description, mutable while Active
	warehouse string

	// goods describes the shipment contents, mutable while Active
	goods string

	// deliveryAddress is the destination, mutable while Active
	deliveryAddress string

	// status represents the current state in the order lifecycle
	status Status

	// selection holds the winning quote data (nil unless closed via selection)
	selection *Selection

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order open for bidding. This is the only way to
// create a fresh order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - ownerID: Identity of the posting user, trusted input from the caller
//   - warehouse, goods, deliveryAddress: Non-empty free text, bounded by DetailMaxLength
//   - now: Creation timestamp, supplied by the caller's clock
//
// The order starts in Active status with no selection.
func NewOrder(id, ownerID kernel.UUID, warehouse, goods, deliveryAddress string, now time.Time) (*Order, error) {
	order := &Order{
		status:        Active,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOwnerID(ownerID),
		order.setWarehouse(warehouse),
		order.setGoods(goods),
		order.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without running the
// creation-time rules, while still verifying structural invariants: a valid
// status and a selection only on a Closed order.
func RestoreOrder(
	id, ownerID kernel.UUID,
	warehouse, goods, deliveryAddress string,
	status Status,
	selection *Selection,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		status.Validate(),
		status.ValidateCanHaveSelection(selection != nil),
	); err != nil {
		return nil, err
	}

	if selection != nil {
		if selection.Provider == "" || selection.Price.Validate() != nil || selection.At.IsZero() {
			return nil, ErrSelectionIncomplete
		}
	}

	return &Order{
		id:              id,
		ownerID:         ownerID,
		warehouse:       warehouse,
		goods:           goods,
		deliveryAddress: deliveryAddress,
		status:          status,
		selection:       selection,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identity of the user who posted the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Warehouse returns the pickup warehouse description.
func (o *Order) Warehouse() string {
	return o.warehouse
}

// Goods returns the shipment contents description.
func (o *Order) Goods() string {
	return o.goods
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Selection returns the winning quote data, or nil if the order is still
// Active or was closed manually without a winner.
func (o *Order) Selection() *Selection {
	return o.selection
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether the given user identity owns this order.
func (o *Order) IsOwnedBy(ownerID kernel.UUID) bool {
	return o.ownerID.IsEqual(ownerID)
}

// UpdateDetails edits the order's free-text fields while bidding is open.
// Nil parameters keep the current value, enabling partial updates with
// explicit typed fields instead of duck-typed payloads.
//
// Returns ErrOrderClosed if the order has already been closed; validation
// errors if a supplied value is empty or exceeds DetailMaxLength.
func (o *Order) UpdateDetails(warehouse, goods, deliveryAddress *string, now time.Time) error {
	if err := o.status.ValidateMutable(); err != nil {
		return err
	}

	var errsJoined error
	if warehouse != nil {
		errsJoined = errors.Join(errsJoined, o.setWarehouse(*warehouse))
	}
	if goods != nil {
		errsJoined = errors.Join(errsJoined, o.setGoods(*goods))
	}
	if deliveryAddress != nil {
		errsJoined = errors.Join(errsJoined, o.setDeliveryAddress(*deliveryAddress))
	}
	if errsJoined != nil {
		return errsJoined
	}

	o.updatedAt = now
	return nil
}

// Close ends bidding manually, with no winning provider.
//
// Valid only while the order is Active; returns ErrOrderClosed otherwise.
// The selection fields remain nil, which is how a manual close is told apart
// from a close via selection.
func (o *Order) Close(now time.Time) error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// SelectWinner closes the order by picking a winning provider and price.
//
// Valid only while the order is Active; returns ErrOrderClosed otherwise.
// The caller is responsible for verifying, inside the same transaction that
// persists this transition, that a quote for (order, provider) exists with
// exactly this price.
func (o *Order) SelectWinner(provider string, price kernel.Price, now time.Time) error {
	if provider == "" {
		return errs.NewValueIsRequiredError("provider")
	}
	if err := price.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.selection = &Selection{
		Provider: provider,
		Price:    price,
		At:       now,
	}
	o.updatedAt = now
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOwnerID validates and sets the owning user's identity.
// This is a private method used only during construction.
func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return fmt.Errorf("ownerID: %w", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setWarehouse(warehouse string) error {
	if err := validateDetail("warehouse", warehouse); err != nil {
		return err
	}
	o.warehouse = warehouse
	return nil
}

func (o *Order) setGoods(goods string) error {
	if err := validateDetail("goods", goods); err != nil {
		return err
	}
	o.goods = goods
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if err := validateDetail("deliveryAddress", deliveryAddress); err != nil {
		return err
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// validateDetail enforces the shared rules for the order's free-text fields.
func validateDetail(paramName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	if len(value) > DetailMaxLength {
		return errs.NewValueIsOutOfRangeError(paramName, len(value), 1, DetailMaxLength)
	}
	return nil
}
