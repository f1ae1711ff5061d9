package tool

import (
	"gestobra/internal/domain"
	"gestobra/internal/domain/stock"
)

// Repository defines the interface for Tool persistence.
type Repository interface {
	domain.CatalogRepository[*Tool]
	stock.Repository[*Tool]
}
