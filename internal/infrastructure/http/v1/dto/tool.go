package dto

import (
	"github.com/shopspring/decimal"

	"gestobra/internal/domain/catalogs/tool"
)

// CreateToolRequest is the request body for creating a tool.
type CreateToolRequest struct {
	Code            string          `json:"code"`
	Name            string          `json:"name" binding:"required"`
	QuantityOnHand  decimal.Decimal `json:"quantityOnHand"`
	MinimumQuantity decimal.Decimal `json:"minimumQuantity"`
	ConditionState  tool.Condition  `json:"conditionState"`
	Brand           string          `json:"brand"`
	SerialNumber    string          `json:"serialNumber"`
}

// ToEntity converts DTO to domain entity. The condition defaults to "new".
func (r *CreateToolRequest) ToEntity() (*tool.Tool, error) {
	t := tool.NewTool(r.Name, r.QuantityOnHand, r.MinimumQuantity)
	t.Code = r.Code
	if r.ConditionState != "" {
		t.Condition = r.ConditionState
	}
	t.Brand = r.Brand
	t.SerialNumber = r.SerialNumber
	return t, nil
}

// UpdateToolRequest is the request body for updating a tool.
type UpdateToolRequest struct {
	Name            string          `json:"name" binding:"required"`
	QuantityOnHand  decimal.Decimal `json:"quantityOnHand"`
	MinimumQuantity decimal.Decimal `json:"minimumQuantity"`
	ConditionState  tool.Condition  `json:"conditionState" binding:"required"`
	Brand           string          `json:"brand"`
	SerialNumber    string          `json:"serialNumber"`
	Version         int             `json:"version" binding:"required,min=1"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateToolRequest) ApplyTo(t *tool.Tool) error {
	t.Name = r.Name
	t.QuantityOnHand = r.QuantityOnHand
	t.MinimumQuantity = r.MinimumQuantity
	t.Condition = r.ConditionState
	t.Brand = r.Brand
	t.SerialNumber = r.SerialNumber
	t.Version = r.Version
	return nil
}

// ToolResponse is the response body for a tool.
type ToolResponse struct {
	CatalogResponse
	BalanceResponse
	ConditionState tool.Condition `json:"conditionState"`
	Brand          string         `json:"brand,omitempty"`
	SerialNumber   string         `json:"serialNumber,omitempty"`
}

// FromTool creates response DTO from domain entity.
func FromTool(t *tool.Tool) *ToolResponse {
	return &ToolResponse{
		CatalogResponse: FromCatalog(t.Catalog),
		BalanceResponse: FromBalance(t.Balance),
		ConditionState:  t.Condition,
		Brand:           t.Brand,
		SerialNumber:    t.SerialNumber,
	}
}
