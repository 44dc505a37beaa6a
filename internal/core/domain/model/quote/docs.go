// Package quote provides the Quote entity for the freightbid reverse-auction
// marketplace: a price and delivery-time offer submitted by one logistics
// provider against one order.
//
// Key business rules:
//   - At most one quote per (order, provider) pair; a repeat submission from
//     the same provider revises the existing quote in place, preserving its
//     identity and creation timestamp
//   - Prices are positive; estimated delivery must lie in the future at
//     submission time
//   - A quote's lifetime is bounded by its order's existence, but quotes on
//     closed orders remain readable as historical records
package quote
