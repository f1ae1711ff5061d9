package tool

import (
	"time"

	"gestobra/internal/domain/filter"
	"gestobra/internal/domain/reports"
)

// Fields lists what the tools screen can filter on.
func Fields() filter.Fields[*Tool] {
	return filter.Fields[*Tool]{
		Text: map[string]func(*Tool) string{
			"name":         func(t *Tool) string { return t.Name },
			"code":         func(t *Tool) string { return t.Code },
			"brand":        func(t *Tool) string { return t.Brand },
			"serialNumber": func(t *Tool) string { return t.SerialNumber },
		},
		Search: []string{"name", "code", "brand", "serialNumber"},
		Dates: map[string]func(*Tool) *time.Time{
			"createdAt": func(t *Tool) *time.Time { return t.CreatedOn() },
			"updatedAt": func(t *Tool) *time.Time { return t.UpdatedOn() },
		},
		DefaultDate: "createdAt",
		Enums: map[string]func(*Tool) string{
			"level":     (*Tool).StockLevel,
			"condition": (*Tool).ConditionState,
		},
	}
}

// Content flags understood by the tools report layout.
const (
	FlagCondition = "includeCondition"
	FlagBrand     = "includeBrand"
	FlagMinimum   = "includeMinimum"
	FlagDates     = "includeDates"
)

// NewSelector returns the report selector for tools.
func NewSelector() *reports.Selector[*Tool] {
	return reports.NewSelector(map[reports.Type]func(*Tool) string{
		reports.TypeByStockLevel: (*Tool).StockLevel,
		reports.TypeByCondition:  (*Tool).ConditionState,
	})
}

// ReportLayout describes the exported tools table.
func ReportLayout() reports.Layout[*Tool] {
	return reports.Layout[*Tool]{
		Title: "Tools",
		Columns: []reports.Column{
			{Key: "code", Header: "Code"},
			{Key: "name", Header: "Name"},
			{Key: "brand", Header: "Brand", Flag: FlagBrand},
			{Key: "serialNumber", Header: "Serial number", Flag: FlagBrand},
			{Key: "quantity", Header: "On hand"},
			{Key: "minimum", Header: "Minimum", Flag: FlagMinimum},
			{Key: "level", Header: "Stock level"},
			{Key: "condition", Header: "Condition", Flag: FlagCondition},
			{Key: "createdAt", Header: "Created", Flag: FlagDates},
			{Key: "updatedAt", Header: "Updated", Flag: FlagDates},
		},
		Row: func(t *Tool) map[string]any {
			return map[string]any{
				"code":         t.Code,
				"name":         t.Name,
				"brand":        t.Brand,
				"serialNumber": t.SerialNumber,
				"quantity":     t.QuantityOnHand,
				"minimum":      t.MinimumQuantity,
				"level":        t.StockLevel(),
				"condition":    t.ConditionState(),
				"createdAt":    t.CreatedAt,
				"updatedAt":    t.UpdatedAt,
			}
		},
	}
}
