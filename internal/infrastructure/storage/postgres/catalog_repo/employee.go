package catalog_repo

import (
	"gestobra/internal/domain/catalogs/employee"
	"gestobra/internal/infrastructure/storage/postgres"
)

// EmployeeRepo implements employee.Repository.
type EmployeeRepo struct {
	*BaseCatalogRepo[*employee.Employee]
}

var _ employee.Repository = (*EmployeeRepo)(nil)

func NewEmployeeRepo(txm *postgres.TxManager) *EmployeeRepo {
	return &EmployeeRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, "cat_employees", "employee",
			func() *employee.Employee { return &employee.Employee{} }),
	}
}
