package project

import (
	"context"

	"gestobra/internal/core/id"
	"gestobra/internal/domain"
)

// Repository defines the interface for Project persistence.
type Repository interface {
	domain.CatalogRepository[*Project]
}

// ClientLookup resolves the client a project references.
type ClientLookup interface {
	Exists(ctx context.Context, clientID id.ID) (bool, error)
}
