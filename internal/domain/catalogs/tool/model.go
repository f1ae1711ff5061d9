// Package tool provides the tools catalog. Tools are counted in stock like
// materials and also carry a physical condition that is tracked separately.
package tool

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/entity"
	"gestobra/internal/domain/stock"
)

// MaxNameLength is the longest accepted tool name.
const MaxNameLength = 30

// Condition is the physical state of a tool. It is independent of the stock level.
type Condition string

const (
	ConditionNew            Condition = "new"
	ConditionGood           Condition = "good"
	ConditionWorn           Condition = "worn"
	ConditionInRepair       Condition = "in_repair"
	ConditionDecommissioned Condition = "decommissioned"
)

// Conditions lists every condition in display order.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionGood, ConditionWorn, ConditionInRepair, ConditionDecommissioned}
}

func (c Condition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionWorn, ConditionInRepair, ConditionDecommissioned:
		return true
	}
	return false
}

// Tool is a reusable stock item.
type Tool struct {
	entity.Catalog
	stock.Balance

	Condition    Condition `db:"condition_state" json:"conditionState"`
	Brand        string    `db:"brand" json:"brand,omitempty"`
	SerialNumber string    `db:"serial_number" json:"serialNumber,omitempty"`
}

// NewTool creates a Tool in the "new" condition with the given initial balance.
func NewTool(name string, quantity, minimum decimal.Decimal) *Tool {
	return &Tool{
		Catalog:   entity.NewCatalog("", name),
		Balance:   stock.Balance{QuantityOnHand: quantity, MinimumQuantity: minimum},
		Condition: ConditionNew,
	}
}

// Validate implements entity.Validatable interface.
func (t *Tool) Validate(ctx context.Context) error {
	if err := t.Catalog.Validate(ctx); err != nil {
		return err
	}
	if err := entity.ValidateNameLength(t.Name, MaxNameLength); err != nil {
		return err
	}
	if err := t.Balance.Validate(); err != nil {
		return err
	}
	if !t.Condition.IsValid() {
		return apperror.NewValidation("invalid tool condition").
			WithDetail("field", "conditionState").
			WithDetail("value", string(t.Condition))
	}
	return nil
}

// CurrentBalance implements stock.Item.
func (t *Tool) CurrentBalance() stock.Balance {
	return t.Balance
}

// ApplyBalance implements stock.Item.
func (t *Tool) ApplyBalance(b stock.Balance, at time.Time) {
	t.Balance = b
	t.Touch(at)
}

// StockLevel is the derived level as a string, for filters and reports.
func (t *Tool) StockLevel() string {
	return string(t.Level())
}

// ConditionState returns the condition as a string, for filters and reports.
func (t *Tool) ConditionState() string {
	return string(t.Condition)
}
