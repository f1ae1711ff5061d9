// Package material provides the construction materials catalog: cement, sand,
// rebar and everything else consumed by projects and counted in stock.
package material

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/entity"
	"gestobra/internal/domain/stock"
)

// MaxNameLength is the longest accepted material name.
const MaxNameLength = 30

// Material is a consumable stock item.
type Material struct {
	entity.Catalog
	stock.Balance

	// Unit is the free-text unit label (bags, m3, kg); no conversion is done
	Unit string `db:"unit" json:"unit"`

	UnitPrice   decimal.Decimal `db:"unit_price" json:"unitPrice"`
	Description string          `db:"description" json:"description,omitempty"`
}

// NewMaterial creates a Material with the given initial balance.
func NewMaterial(name, unit string, quantity, minimum decimal.Decimal) *Material {
	return &Material{
		Catalog: entity.NewCatalog("", name),
		Balance: stock.Balance{QuantityOnHand: quantity, MinimumQuantity: minimum},
		Unit:    unit,
	}
}

// Validate implements entity.Validatable interface.
func (m *Material) Validate(ctx context.Context) error {
	if err := m.Catalog.Validate(ctx); err != nil {
		return err
	}
	if err := entity.ValidateNameLength(m.Name, MaxNameLength); err != nil {
		return err
	}
	if err := m.Balance.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(m.Unit) == "" {
		return apperror.NewValidation("unit is required").
			WithDetail("field", "unit")
	}
	if m.UnitPrice.IsNegative() {
		return apperror.NewValidation("unit price cannot be negative").
			WithDetail("field", "unitPrice")
	}
	return nil
}

// CurrentBalance implements stock.Item.
func (m *Material) CurrentBalance() stock.Balance {
	return m.Balance
}

// ApplyBalance implements stock.Item.
func (m *Material) ApplyBalance(b stock.Balance, at time.Time) {
	m.Balance = b
	m.Touch(at)
}

// StockLevel is the derived level as a string, for filters and reports.
func (m *Material) StockLevel() string {
	return string(m.Level())
}

// StockValue is quantity on hand times unit price.
func (m *Material) StockValue() decimal.Decimal {
	return m.QuantityOnHand.Mul(m.UnitPrice)
}
