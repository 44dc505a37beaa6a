// Package order provides domain entities and business logic for the order side
// of the freightbid reverse-auction marketplace. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, details, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Selection: The winning quote recorded when an owner picks a provider
//
// Key business rules:
//   - Orders must have a valid identifier, owner, and non-empty bounded text fields
//   - Order status follows a defined workflow: Active -> Closed
//   - Closing is terminal and exclusive: of two racing close/select operations
//     exactly one succeeds, enforced by a conditional write at the storage layer
//   - A winning selection can only exist on a Closed order; manual closes carry none
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
