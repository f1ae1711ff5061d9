package catalog_repo

import (
	"gestobra/internal/domain/catalogs/project"
	"gestobra/internal/infrastructure/storage/postgres"
)

// ProjectRepo implements project.Repository.
type ProjectRepo struct {
	*BaseCatalogRepo[*project.Project]
}

var _ project.Repository = (*ProjectRepo)(nil)

func NewProjectRepo(txm *postgres.TxManager) *ProjectRepo {
	return &ProjectRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, "cat_projects", "project",
			func() *project.Project { return &project.Project{} }),
	}
}
