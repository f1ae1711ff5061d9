package client

import (
	"gestobra/internal/core/tx"
	"gestobra/internal/domain"
)

// CodePrefix of generated client codes.
const CodePrefix = "CLI"

// Service provides business logic for the clients catalog.
type Service struct {
	*domain.CatalogService[*Client]
}

// NewService creates a new Client service.
func NewService(repo Repository, txManager tx.Manager, codes domain.CodeGenerator) *Service {
	return &Service{
		CatalogService: domain.NewCatalogService(domain.CatalogServiceConfig[*Client]{
			Repo:       repo,
			TxManager:  txManager,
			Codes:      codes,
			Fields:     Fields(),
			EntityName: "client",
			CodePrefix: CodePrefix,
		}),
	}
}
