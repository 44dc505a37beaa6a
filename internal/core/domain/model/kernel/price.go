package kernel

import (
	"fmt"

	"freightbid/internal/pkg/errs"
)

// PriceMinAmount is the smallest amount a price may carry, in minor units.
// A quote of zero is meaningless in a competitive bidding context.
const PriceMinAmount int64 = 1

// ErrPriceIsNotConstructed indicates that a Price was not created through
// NewPrice. The zero value of Price is invalid.
var ErrPriceIsNotConstructed = errs.NewValueIsRequiredError("price must be created via NewPrice")

// Price is a value object representing an amount of money in minor units
// (for example, cents). Storing prices as integers avoids floating-point
// rounding issues when prices are compared for the lowest-quote ranking and
// for the exact-match check during provider selection.
//
// Price is immutable and thread-safe. The zero value is invalid and must be
// constructed via NewPrice.
//
// Example usage:
//
//	price, err := kernel.NewPrice(12550) // 125.50 in the marketplace currency
//	if err != nil {
//	    // handle validation error
//	}
type Price struct {
	amount        int64
	isConstructed bool
}

// NewPrice creates a Price from an amount in minor units.
// The amount must be positive; zero and negative amounts are rejected.
func NewPrice(amount int64) (Price, error) {
	if amount < PriceMinAmount {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d is not greater than 0", amount))
	}

	return Price{amount: amount, isConstructed: true}, nil
}

// Amount returns the price in minor units.
func (p Price) Amount() int64 {
	return p.amount
}

// IsEqual compares two prices for exact equality.
// Used for the tamper/staleness check when an owner selects a winning quote.
func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

// IsLowerThan reports whether p is strictly lower than other.
func (p Price) IsLowerThan(other Price) bool {
	return p.amount < other.amount
}

// String formats the price with two decimal places, e.g. "125.50".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.amount/100, p.amount%100)
}

// Validate checks that the Price was created via NewPrice.
func (p Price) Validate() error {
	if !p.isConstructed {
		return ErrPriceIsNotConstructed
	}
	return nil
}
