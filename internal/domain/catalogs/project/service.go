package project

import (
	"context"
	"fmt"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/tx"
	"gestobra/internal/domain"
)

// CodePrefix of generated project codes.
const CodePrefix = "PRY"

// Service provides business logic for the projects catalog.
type Service struct {
	*domain.CatalogService[*Project]
	clients ClientLookup
}

// NewService creates a new Project service.
func NewService(repo Repository, clients ClientLookup, txManager tx.Manager, codes domain.CodeGenerator) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Project]{
		Repo:       repo,
		TxManager:  txManager,
		Codes:      codes,
		Fields:     Fields(),
		EntityName: "project",
		CodePrefix: CodePrefix,
	})

	svc := &Service{
		CatalogService: base,
		clients:        clients,
	}

	base.Hooks().On(domain.BeforeCreate, svc.checkClient)
	base.Hooks().On(domain.BeforeUpdate, svc.checkClient)

	return svc
}

// checkClient rejects references to unknown or deleted clients.
func (s *Service) checkClient(ctx context.Context, p *Project) error {
	if p.ClientID == nil {
		return nil
	}
	ok, err := s.clients.Exists(ctx, *p.ClientID)
	if err != nil {
		return fmt.Errorf("check client: %w", err)
	}
	if !ok {
		return apperror.NewValidation("client does not exist").
			WithDetail("field", "clientId").
			WithDetail("value", p.ClientID.String())
	}
	return nil
}
