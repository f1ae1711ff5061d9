package dto

import (
	"github.com/shopspring/decimal"

	"gestobra/internal/domain/catalogs/material"
)

// --- Request DTOs ---

// CreateMaterialRequest is the request body for creating a material.
// QuantityOnHand seeds the balance and defaults to zero.
type CreateMaterialRequest struct {
	Code            string          `json:"code"`
	Name            string          `json:"name" binding:"required"`
	Unit            string          `json:"unit" binding:"required"`
	QuantityOnHand  decimal.Decimal `json:"quantityOnHand"`
	MinimumQuantity decimal.Decimal `json:"minimumQuantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Description     string          `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMaterialRequest) ToEntity() (*material.Material, error) {
	m := material.NewMaterial(r.Name, r.Unit, r.QuantityOnHand, r.MinimumQuantity)
	m.Code = r.Code
	m.UnitPrice = r.UnitPrice
	m.Description = r.Description
	return m, nil
}

// UpdateMaterialRequest is the request body for updating a material.
type UpdateMaterialRequest struct {
	Name            string          `json:"name" binding:"required"`
	Unit            string          `json:"unit" binding:"required"`
	QuantityOnHand  decimal.Decimal `json:"quantityOnHand"`
	MinimumQuantity decimal.Decimal `json:"minimumQuantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	Description     string          `json:"description"`
	Version         int             `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMaterialRequest) ApplyTo(m *material.Material) error {
	m.Name = r.Name
	m.Unit = r.Unit
	m.QuantityOnHand = r.QuantityOnHand
	m.MinimumQuantity = r.MinimumQuantity
	m.UnitPrice = r.UnitPrice
	m.Description = r.Description
	m.Version = r.Version
	return nil
}

// --- Response DTOs ---

// MaterialResponse is the response body for a material.
type MaterialResponse struct {
	CatalogResponse
	BalanceResponse
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	StockValue  decimal.Decimal `json:"stockValue"`
	Description string          `json:"description,omitempty"`
}

// FromMaterial creates response DTO from domain entity.
func FromMaterial(m *material.Material) *MaterialResponse {
	return &MaterialResponse{
		CatalogResponse: FromCatalog(m.Catalog),
		BalanceResponse: FromBalance(m.Balance),
		Unit:            m.Unit,
		UnitPrice:       m.UnitPrice,
		StockValue:      m.StockValue(),
		Description:     m.Description,
	}
}
