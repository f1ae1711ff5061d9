package project

import (
	"time"

	"gestobra/internal/domain/filter"
	"gestobra/internal/domain/reports"
)

// Fields lists what the projects screen can filter on.
func Fields() filter.Fields[*Project] {
	return filter.Fields[*Project]{
		Text: map[string]func(*Project) string{
			"name":     func(p *Project) string { return p.Name },
			"code":     func(p *Project) string { return p.Code },
			"location": func(p *Project) string { return p.Location },
		},
		Search: []string{"name", "code", "location"},
		Dates: map[string]func(*Project) *time.Time{
			"startDate": func(p *Project) *time.Time { return p.StartDate },
			"endDate":   func(p *Project) *time.Time { return p.EndDate },
			"createdAt": func(p *Project) *time.Time { return p.CreatedOn() },
		},
		DefaultDate: "startDate",
		Enums: map[string]func(*Project) string{
			"status": (*Project).StatusValue,
			"clientId": func(p *Project) string {
				if p.ClientID == nil {
					return ""
				}
				return p.ClientID.String()
			},
		},
	}
}

const (
	FlagBudget = "includeBudget"
	FlagDates  = "includeDates"
)

// NewSelector returns the report selector for projects.
func NewSelector() *reports.Selector[*Project] {
	return reports.NewSelector(map[reports.Type]func(*Project) string{
		reports.TypeByStatus: (*Project).StatusValue,
	})
}

// ReportLayout describes the exported projects table.
func ReportLayout() reports.Layout[*Project] {
	return reports.Layout[*Project]{
		Title: "Projects",
		Columns: []reports.Column{
			{Key: "code", Header: "Code"},
			{Key: "name", Header: "Name"},
			{Key: "location", Header: "Location"},
			{Key: "status", Header: "Status"},
			{Key: "startDate", Header: "Start", Flag: FlagDates},
			{Key: "endDate", Header: "End", Flag: FlagDates},
			{Key: "budget", Header: "Budget", Flag: FlagBudget},
		},
		Row: func(p *Project) map[string]any {
			row := map[string]any{
				"code":     p.Code,
				"name":     p.Name,
				"location": p.Location,
				"status":   p.StatusValue(),
				"budget":   p.Budget,
			}
			if p.StartDate != nil {
				row["startDate"] = *p.StartDate
			}
			if p.EndDate != nil {
				row["endDate"] = *p.EndDate
			}
			return row
		},
	}
}
