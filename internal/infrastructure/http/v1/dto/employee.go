package dto

import (
	"time"

	"gestobra/internal/domain/catalogs/employee"
)

// CreateEmployeeRequest is the request body for creating an employee.
// HiredAt is a day, "2006-01-02".
type CreateEmployeeRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Active  *bool  `json:"active"`
	HiredAt string `json:"hiredAt"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateEmployeeRequest) ToEntity() (*employee.Employee, error) {
	hiredAt, err := parseDate("hiredAt", r.HiredAt)
	if err != nil {
		return nil, err
	}
	e := employee.NewEmployee(r.Name, r.Role)
	e.Code = r.Code
	e.Email = r.Email
	e.Phone = r.Phone
	if r.Active != nil {
		e.Active = *r.Active
	}
	e.HiredAt = hiredAt
	return e, nil
}

// UpdateEmployeeRequest is the request body for updating an employee.
type UpdateEmployeeRequest struct {
	Name    string `json:"name" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Active  bool   `json:"active"`
	HiredAt string `json:"hiredAt"`
	Version int    `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateEmployeeRequest) ApplyTo(e *employee.Employee) error {
	hiredAt, err := parseDate("hiredAt", r.HiredAt)
	if err != nil {
		return err
	}
	e.Name = r.Name
	e.Role = r.Role
	e.Email = r.Email
	e.Phone = r.Phone
	e.Active = r.Active
	e.HiredAt = hiredAt
	e.Version = r.Version
	return nil
}

// EmployeeResponse is the response body for an employee.
type EmployeeResponse struct {
	CatalogResponse
	Role    string     `json:"role"`
	Email   string     `json:"email,omitempty"`
	Phone   string     `json:"phone,omitempty"`
	Active  bool       `json:"active"`
	Status  string     `json:"status"`
	HiredAt *time.Time `json:"hiredAt,omitempty"`
}

// FromEmployee creates response DTO from domain entity.
func FromEmployee(e *employee.Employee) *EmployeeResponse {
	return &EmployeeResponse{
		CatalogResponse: FromCatalog(e.Catalog),
		Role:            e.Role,
		Email:           e.Email,
		Phone:           e.Phone,
		Active:          e.Active,
		Status:          e.Status(),
		HiredAt:         e.HiredAt,
	}
}
