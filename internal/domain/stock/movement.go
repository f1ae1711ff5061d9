package stock

import (
	"github.com/shopspring/decimal"

	"gestobra/internal/core/apperror"
)

// Direction of a movement: stock coming in or going out.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

func (d Direction) IsValid() bool {
	return d == DirectionIn || d == DirectionOut
}

// Movement is a single increment or decrement request. It is not persisted;
// Reason ends up in the log line of the applied movement.
type Movement struct {
	Direction Direction
	Amount    decimal.Decimal
	Reason    string
}

// Validate checks a proposed movement against the current quantity.
// It has no side effects.
func Validate(direction Direction, amount, current decimal.Decimal) error {
	if !direction.IsValid() {
		return apperror.NewValidation("unknown movement direction").
			WithDetail("direction", string(direction))
	}
	if !amount.IsPositive() {
		return apperror.NewInvalidAmount(amount.String())
	}
	if direction == DirectionOut && amount.GreaterThan(current) {
		return apperror.NewInsufficientStock("", amount.String(), current.String())
	}
	return nil
}
