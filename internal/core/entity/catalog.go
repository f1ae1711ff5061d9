package entity

import (
	"context"
	"unicode/utf8"

	"gestobra/internal/core/apperror"
)

// Catalog is the base type for reference data: clients, employees,
// projects, materials and tools.
type Catalog struct {
	BaseEntity

	// Code is a human-readable identifier, generated on create when empty
	Code string `db:"code" json:"code"`

	// Name is the display name
	Name string `db:"name" json:"name"`
}

// NewCatalog creates a new Catalog with generated ID.
func NewCatalog(code, name string) Catalog {
	return Catalog{
		BaseEntity: NewBaseEntity(),
		Code:       code,
		Name:       name,
	}
}

// Validate implements Validatable interface.
func (c *Catalog) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}

// GetCode returns the catalog code.
func (c *Catalog) GetCode() string {
	return c.Code
}

// SetCode assigns the catalog code.
func (c *Catalog) SetCode(code string) {
	c.Code = code
}

// ValidateNameLength rejects names longer than max characters.
func ValidateNameLength(name string, max int) error {
	if utf8.RuneCountInString(name) > max {
		return apperror.NewValidation("name is too long").
			WithDetail("field", "name").
			WithDetail("max", max)
	}
	return nil
}
