// Package stock holds the quantity-on-hand model of materials and tools:
// stock level classification, movement validation and the ledger that applies movements.
package stock

import (
	"github.com/shopspring/decimal"
)

// Level is the derived stock category of an item. It is never stored.
type Level string

const (
	LevelCritical Level = "critical"
	LevelLow      Level = "low"
	LevelNormal   Level = "normal"
)

var two = decimal.NewFromInt(2)

// Classify maps quantity on hand and minimum quantity to a Level.
//
// A zero minimum is not special: zero stock is critical and any positive
// quantity is already normal.
func Classify(quantityOnHand, minimumQuantity decimal.Decimal) Level {
	switch {
	case quantityOnHand.LessThanOrEqual(minimumQuantity):
		return LevelCritical
	case quantityOnHand.LessThanOrEqual(minimumQuantity.Mul(two)):
		return LevelLow
	default:
		return LevelNormal
	}
}

// Rank orders levels critical < low < normal. Unknown levels rank below critical.
func (l Level) Rank() int {
	switch l {
	case LevelCritical:
		return 1
	case LevelLow:
		return 2
	case LevelNormal:
		return 3
	default:
		return 0
	}
}

// IsValid reports whether l is one of the known levels.
func (l Level) IsValid() bool {
	return l.Rank() > 0
}

// Levels lists every level in rank order.
func Levels() []Level {
	return []Level{LevelCritical, LevelLow, LevelNormal}
}

func (l Level) String() string {
	return string(l)
}
