package catalog_repo

import (
	"gestobra/internal/domain/catalogs/material"
	"gestobra/internal/infrastructure/storage/postgres"
)

// MaterialRepo implements material.Repository.
type MaterialRepo struct {
	*InventoryRepo[*material.Material]
}

var _ material.Repository = (*MaterialRepo)(nil)

// NewMaterialRepo creates a new material repository.
func NewMaterialRepo(txm *postgres.TxManager) *MaterialRepo {
	base := NewBaseCatalogRepo(txm, "cat_materials", "material",
		func() *material.Material { return &material.Material{} })
	return &MaterialRepo{InventoryRepo: NewInventoryRepo(base)}
}
