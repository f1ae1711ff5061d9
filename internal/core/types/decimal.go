// Package types provides the numeric value types shared by catalogs and stock.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
type Money = decimal.Decimal

// Quantity is an amount of stock expressed in the item's own unit.
// Fractional amounts are allowed (metres of cable, litres of paint).
type Quantity = decimal.Decimal

// QuantityPlaces is the number of fractional digits kept in storage (NUMERIC(18,4)).
const QuantityPlaces int32 = 4

// RoundQuantity rounds q to the storage scale.
func RoundQuantity(q Quantity) Quantity {
	return q.Round(QuantityPlaces)
}

// ParseQuantity parses a decimal string such as "12.5".
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty quantity")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse quantity: %w", err)
	}
	return RoundQuantity(d), nil
}

// NewMoneyFromString creates a Money value from a string.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// MustQuantity is MustMoney for quantities.
func MustQuantity(s string) Quantity {
	return MustMoney(s)
}
