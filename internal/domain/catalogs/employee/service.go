package employee

import (
	"gestobra/internal/core/tx"
	"gestobra/internal/domain"
)

// CodePrefix of generated employee codes.
const CodePrefix = "EMP"

// Service provides business logic for the employees catalog.
type Service struct {
	*domain.CatalogService[*Employee]
}

// NewService creates a new Employee service.
func NewService(repo Repository, txManager tx.Manager, codes domain.CodeGenerator) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Employee]{
			Repo:       repo,
			TxManager:  txManager,
			Codes:      codes,
			Fields:     Fields(),
			EntityName: "employee",
			CodePrefix: CodePrefix,
		}),
	}
}
