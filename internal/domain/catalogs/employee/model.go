// Package employee provides the employees catalog.
package employee

import (
	"context"
	"time"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/entity"
	"gestobra/internal/domain/filter"
	"gestobra/internal/domain/reports"
)

const MaxNameLength = 60

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Employee is a member of the staff.
type Employee struct {
	entity.Catalog

	Role    string     `db:"role" json:"role"`
	Email   string     `db:"email" json:"email,omitempty"`
	Phone   string     `db:"phone" json:"phone,omitempty"`
	Active  bool       `db:"active" json:"active"`
	HiredAt *time.Time `db:"hired_at" json:"hiredAt,omitempty"`
}

// NewEmployee creates an active employee.
func NewEmployee(name, role string) *Employee {
	return &Employee{
		Catalog: entity.NewCatalog("", name),
		Role:    role,
		Active:  true,
	}
}

// Validate implements entity.Validatable interface.
func (e *Employee) Validate(ctx context.Context) error {
	if err := e.Catalog.Validate(ctx); err != nil {
		return err
	}
	if err := entity.ValidateNameLength(e.Name, MaxNameLength); err != nil {
		return err
	}
	if e.Role == "" {
		return apperror.NewValidation("role is required").
			WithDetail("field", "role")
	}
	return nil
}

func (e *Employee) Status() string {
	if e.Active {
		return StatusActive
	}
	return StatusInactive
}

// Fields lists what the employees screen can filter on.
func Fields() filter.Fields[*Employee] {
	return filter.Fields[*Employee]{
		Text: map[string]func(*Employee) string{
			"name":  func(e *Employee) string { return e.Name },
			"role":  func(e *Employee) string { return e.Role },
			"email": func(e *Employee) string { return e.Email },
			"phone": func(e *Employee) string { return e.Phone },
		},
		Search: []string{"name", "role", "email"},
		Dates: map[string]func(*Employee) *time.Time{
			"hiredAt":   func(e *Employee) *time.Time { return e.HiredAt },
			"createdAt": func(e *Employee) *time.Time { return e.CreatedOn() },
		},
		DefaultDate: "hiredAt",
		Enums: map[string]func(*Employee) string{
			"status": (*Employee).Status,
			"role":   func(e *Employee) string { return e.Role },
		},
	}
}

// NewSelector returns the report selector for employees.
func NewSelector() *reports.Selector[*Employee] {
	return reports.NewSelector(map[reports.Type]func(*Employee) string{
		reports.TypeByStatus: (*Employee).Status,
	})
}

const FlagContact = "includeContact"

// ReportLayout describes the exported employees table.
func ReportLayout() reports.Layout[*Employee] {
	return reports.Layout[*Employee]{
		Title: "Employees",
		Columns: []reports.Column{
			{Key: "code", Header: "Code"},
			{Key: "name", Header: "Name"},
			{Key: "role", Header: "Role"},
			{Key: "email", Header: "Email", Flag: FlagContact},
			{Key: "phone", Header: "Phone", Flag: FlagContact},
			{Key: "hiredAt", Header: "Hired"},
			{Key: "status", Header: "Status"},
		},
		Row: func(e *Employee) map[string]any {
			row := map[string]any{
				"code":   e.Code,
				"name":   e.Name,
				"role":   e.Role,
				"email":  e.Email,
				"phone":  e.Phone,
				"status": e.Status(),
			}
			if e.HiredAt != nil {
				row["hiredAt"] = *e.HiredAt
			}
			return row
		},
	}
}
