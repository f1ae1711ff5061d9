package dto

import (
	"github.com/shopspring/decimal"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/types"
	"gestobra/internal/domain/stock"
)

// BalanceResponse is the stock part of an inventory item.
type BalanceResponse struct {
	QuantityOnHand  decimal.Decimal `json:"quantityOnHand"`
	MinimumQuantity decimal.Decimal `json:"minimumQuantity"`
	StockLevel      stock.Level     `json:"stockLevel"`
}

// FromBalance creates BalanceResponse with the derived level.
func FromBalance(b stock.Balance) BalanceResponse {
	return BalanceResponse{
		QuantityOnHand:  b.QuantityOnHand,
		MinimumQuantity: b.MinimumQuantity,
		StockLevel:      b.Level(),
	}
}

// MovementRequest is the body of POST /:id/in and /:id/out.
type MovementRequest struct {
	// Amount accepts a JSON number or a decimal string ("12.5").
	Amount *decimal.Decimal `json:"amount"`
	Reason string           `json:"reason"`
}

// ToMovement converts the request. A missing amount is INVALID_AMOUNT;
// the sign is checked by the ledger.
func (r *MovementRequest) ToMovement(direction stock.Direction) (stock.Movement, error) {
	if r.Amount == nil {
		return stock.Movement{}, apperror.NewInvalidAmount("")
	}
	return stock.Movement{
		Direction: direction,
		Amount:    types.RoundQuantity(*r.Amount),
		Reason:    r.Reason,
	}, nil
}
