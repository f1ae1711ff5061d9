package material

import (
	"gestobra/internal/domain"
	"gestobra/internal/domain/stock"
)

// Repository defines the interface for Material persistence.
type Repository interface {
	domain.CatalogRepository[*Material]
	stock.Repository[*Material]
}
