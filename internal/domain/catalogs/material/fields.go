package material

import (
	"time"

	"gestobra/internal/domain/filter"
	"gestobra/internal/domain/reports"
)

// Fields lists what the materials screen can filter on.
func Fields() filter.Fields[*Material] {
	return filter.Fields[*Material]{
		Text: map[string]func(*Material) string{
			"name":        func(m *Material) string { return m.Name },
			"code":        func(m *Material) string { return m.Code },
			"unit":        func(m *Material) string { return m.Unit },
			"description": func(m *Material) string { return m.Description },
		},
		Search: []string{"name", "code", "unit"},
		Dates: map[string]func(*Material) *time.Time{
			"createdAt": func(m *Material) *time.Time { return m.CreatedOn() },
			"updatedAt": func(m *Material) *time.Time { return m.UpdatedOn() },
		},
		DefaultDate: "createdAt",
		Enums: map[string]func(*Material) string{
			"level": (*Material).StockLevel,
		},
	}
}

// Content flags understood by the materials report layout.
const (
	FlagUnitPrice = "includeUnitPrice"
	FlagMinimum   = "includeMinimum"
	FlagDates     = "includeDates"
)

// NewSelector returns the report selector for materials.
func NewSelector() *reports.Selector[*Material] {
	return reports.NewSelector(map[reports.Type]func(*Material) string{
		reports.TypeByStockLevel: (*Material).StockLevel,
	})
}

// ReportLayout describes the exported materials table.
func ReportLayout() reports.Layout[*Material] {
	return reports.Layout[*Material]{
		Title: "Materials",
		Columns: []reports.Column{
			{Key: "code", Header: "Code"},
			{Key: "name", Header: "Name"},
			{Key: "unit", Header: "Unit"},
			{Key: "quantity", Header: "On hand"},
			{Key: "minimum", Header: "Minimum", Flag: FlagMinimum},
			{Key: "level", Header: "Stock level"},
			{Key: "unitPrice", Header: "Unit price", Flag: FlagUnitPrice},
			{Key: "stockValue", Header: "Stock value", Flag: FlagUnitPrice},
			{Key: "createdAt", Header: "Created", Flag: FlagDates},
			{Key: "updatedAt", Header: "Updated", Flag: FlagDates},
		},
		Row: func(m *Material) map[string]any {
			return map[string]any{
				"code":       m.Code,
				"name":       m.Name,
				"unit":       m.Unit,
				"quantity":   m.QuantityOnHand,
				"minimum":    m.MinimumQuantity,
				"level":      m.StockLevel(),
				"unitPrice":  m.UnitPrice,
				"stockValue": m.StockValue(),
				"createdAt":  m.CreatedAt,
				"updatedAt":  m.UpdatedAt,
			}
		},
	}
}
