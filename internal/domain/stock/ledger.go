package stock

import (
	"time"

	"github.com/shopspring/decimal"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
)

// Balance is the ledger-relevant state of an inventory item.
// It is embedded in materials and tools and maps onto their table columns.
type Balance struct {
	QuantityOnHand  decimal.Decimal `db:"quantity_on_hand" json:"quantityOnHand"`
	MinimumQuantity decimal.Decimal `db:"minimum_quantity" json:"minimumQuantity"`
}

// Level classifies the balance.
func (b Balance) Level() Level {
	return Classify(b.QuantityOnHand, b.MinimumQuantity)
}

// Validate checks the non-negative invariants of the balance.
func (b Balance) Validate() error {
	if b.QuantityOnHand.IsNegative() {
		return apperror.NewValidation("quantity on hand cannot be negative").
			WithDetail("field", "quantityOnHand")
	}
	if b.MinimumQuantity.IsNegative() {
		return apperror.NewValidation("minimum quantity cannot be negative").
			WithDetail("field", "minimumQuantity")
	}
	return nil
}

// Item is an inventory record the ledger can apply movements to.
type Item interface {
	GetID() id.ID
	CurrentBalance() Balance
	// ApplyBalance replaces the balance and stamps the modification time.
	ApplyBalance(b Balance, at time.Time)
}

// Result describes an accepted movement.
type Result struct {
	ItemID    id.ID
	Direction Direction
	Amount    decimal.Decimal
	Reason    string
	Previous  decimal.Decimal
	Current   decimal.Decimal
	Level     Level
	AppliedAt time.Time
}

// Clock returns the current time.
type Clock func() time.Time

// Ledger applies validated movements to items.
type Ledger struct {
	now Clock
}

// NewLedger creates a ledger. A nil clock means time.Now in UTC.
func NewLedger(now Clock) *Ledger {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Ledger{now: now}
}

// Apply validates m against item's balance and, when accepted, writes the new
// quantity and modification time into item. A rejected movement leaves item untouched.
func (l *Ledger) Apply(item Item, m Movement) (Result, error) {
	balance := item.CurrentBalance()

	if err := Validate(m.Direction, m.Amount, balance.QuantityOnHand); err != nil {
		if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeInsufficientStock {
			appErr.WithDetail("item_id", item.GetID().String())
		}
		return Result{}, err
	}

	previous := balance.QuantityOnHand
	if m.Direction == DirectionIn {
		balance.QuantityOnHand = previous.Add(m.Amount)
	} else {
		balance.QuantityOnHand = previous.Sub(m.Amount)
	}

	at := l.now()
	item.ApplyBalance(balance, at)

	return Result{
		ItemID:    item.GetID(),
		Direction: m.Direction,
		Amount:    m.Amount,
		Reason:    m.Reason,
		Previous:  previous,
		Current:   balance.QuantityOnHand,
		Level:     balance.Level(),
		AppliedAt: at,
	}, nil
}
