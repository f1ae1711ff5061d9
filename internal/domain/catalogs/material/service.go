package material

import (
	"context"

	"gestobra/internal/core/id"
	"gestobra/internal/core/tx"
	"gestobra/internal/domain"
	"gestobra/internal/domain/stock"
)

// CodePrefix of generated material codes.
const CodePrefix = "MAT"

// Service provides business logic for the materials catalog.
// CRUD is delegated to the embedded domain.CatalogService.
type Service struct {
	*domain.CatalogService[*Material]
	movements *stock.Service[*Material]
}

// NewService creates a new Material service.
func NewService(repo Repository, txManager tx.Manager, codes domain.CodeGenerator, recorder stock.Recorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Material]{
		Repo:       repo,
		TxManager:  txManager,
		Codes:      codes,
		Fields:     Fields(),
		EntityName: "material",
		CodePrefix: CodePrefix,
	})

	return &Service{
		CatalogService: base,
		movements: stock.NewService(stock.ServiceConfig[*Material]{
			Repo:       repo,
			TxManager:  txManager,
			Recorder:   recorder,
			EntityName: "material",
		}),
	}
}

// Move applies an in/out movement to a stored material.
func (s *Service) Move(ctx context.Context, materialID id.ID, m stock.Movement) (*Material, error) {
	return s.movements.Move(ctx, materialID, m)
}

// Stats counts active materials per stock level.
func (s *Service) Stats(ctx context.Context) (stock.Summary, error) {
	items, err := s.All(ctx)
	if err != nil {
		return stock.Summary{}, err
	}
	return stock.Summarize(items), nil
}
