package tool

import (
	"context"

	"gestobra/internal/core/id"
	"gestobra/internal/core/tx"
	"gestobra/internal/domain"
	"gestobra/internal/domain/stock"
)

// CodePrefix of generated tool codes.
const CodePrefix = "HER"

// Stats is the dashboard summary of the tools catalog.
type Stats struct {
	stock.Summary
	ByCondition map[Condition]int `json:"byCondition"`
}

// Service provides business logic for the tools catalog.
type Service struct {
	*domain.CatalogService[*Tool]
	movements *stock.Service[*Tool]
}

// NewService creates a new Tool service.
func NewService(repo Repository, txManager tx.Manager, codes domain.CodeGenerator, recorder stock.Recorder) *Service {
	base := domain.NewCatalogService(domain.CatalogServiceConfig[*Tool]{
		Repo:       repo,
		TxManager:  txManager,
		Codes:      codes,
		Fields:     Fields(),
		EntityName: "tool",
		CodePrefix: CodePrefix,
	})

	return &Service{
		CatalogService: base,
		movements: stock.NewService(stock.ServiceConfig[*Tool]{
			Repo:       repo,
			TxManager:  txManager,
			Recorder:   recorder,
			EntityName: "tool",
		}),
	}
}

// Move applies an in/out movement to a stored tool.
func (s *Service) Move(ctx context.Context, toolID id.ID, m stock.Movement) (*Tool, error) {
	return s.movements.Move(ctx, toolID, m)
}

// Stats counts active tools per stock level and per condition.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	items, err := s.All(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		Summary:     stock.Summarize(items),
		ByCondition: make(map[Condition]int, len(Conditions())),
	}
	for _, c := range Conditions() {
		stats.ByCondition[c] = 0
	}
	for _, t := range items {
		stats.ByCondition[t.Condition]++
	}
	return stats, nil
}
