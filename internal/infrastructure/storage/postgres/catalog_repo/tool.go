package catalog_repo

import (
	"gestobra/internal/domain/catalogs/tool"
	"gestobra/internal/infrastructure/storage/postgres"
)

// ToolRepo implements tool.Repository.
type ToolRepo struct {
	*InventoryRepo[*tool.Tool]
}

var _ tool.Repository = (*ToolRepo)(nil)

func NewToolRepo(txm *postgres.TxManager) *ToolRepo {
	base := NewBaseCatalogRepo(txm, "cat_tools", "tool",
		func() *tool.Tool { return &tool.Tool{} })
	return &ToolRepo{InventoryRepo: NewInventoryRepo(base)}
}
