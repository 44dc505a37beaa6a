package order

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single transition to ensure orders
// follow the correct bidding workflow.
//
// State transitions:
//
//	Active ──> Closed
//
// An order is open for competitive bidding while Active. Closing is terminal
// and happens either manually (no winner) or through provider selection.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Active is the initial status when an order is first created.
	// Orders in this status accept quote submissions and field edits.
	Active

	// Closed indicates bidding has ended, either by manual close or by
	// provider selection. This is a final state with no further transitions.
	Closed
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Active:  "Active",
		Closed:  "Closed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Active: "Active",
		Closed: "Closed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Active and Closed; Unknown (0) and any other values are invalid.
// Used to ensure Status values from external sources (e.g. database) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateMutable checks whether an order in this status may still be
// modified, without performing a transition. Only Active orders accept edits,
// quote submissions, closing, and provider selection.
func (s Status) ValidateMutable() error {
	if s != Active {
		return ErrOrderClosed
	}
	return nil
}

// ValidateCanHaveSelection validates the consistency between order status and
// the presence of a winning selection.
//
// Business rules:
//   - Active orders must not carry a selection
//   - A selection implies the order is Closed
//   - Closed orders may or may not carry a selection (manual close has none)
//
// Parameters:
//   - selection: whether the order carries a winning provider selection
func (s Status) ValidateCanHaveSelection(selection bool) error {
	if selection && s != Closed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to carry a selection", s.String()),
		)
	}
	return nil
}

// Close transitions the status to Closed.
//
// Valid transitions:
//   - Active -> Closed (manual close or provider selection)
//
// Invalid transitions:
//   - Closed -> Closed (already closed)
//   - Unknown -> Closed (invalid initial state)
//
// Returns (Closed, nil) on a valid transition, or (0, ErrOrderClosed) when the
// order is already terminal.
func (s Status) Close() (Status, error) {
	if err := s.ValidateMutable(); err != nil {
		return 0, err
	}

	return Closed, nil
}

// StatusFromString parses a status from its string name.
// Accepts only valid statuses ("Active", "Closed"); anything else is an error.
// Used to interpret status filters arriving from external callers.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}
