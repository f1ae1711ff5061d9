package catalog_repo

import (
	"gestobra/internal/domain/catalogs/client"
	"gestobra/internal/domain/catalogs/project"
	"gestobra/internal/infrastructure/storage/postgres"
)

// ClientRepo implements client.Repository.
// It also serves project.ClientLookup.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

var (
	_ client.Repository    = (*ClientRepo)(nil)
	_ project.ClientLookup = (*ClientRepo)(nil)
)

// NewClientRepo creates a new client repository.
func NewClientRepo(txm *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, "cat_clients", "client",
			func() *client.Client { return &client.Client{} }),
	}
}
