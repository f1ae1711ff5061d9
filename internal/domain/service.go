package domain

import (
	"context"
	"fmt"
	"time"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
	"gestobra/internal/core/tx"
	"gestobra/internal/domain/filter"
	"gestobra/pkg/logger"
)

// CatalogService provides business logic for catalog entities.
type CatalogService[T CatalogEntity] struct {
	repo      CatalogRepository[T]
	txManager tx.Manager
	codes     CodeGenerator
	hooks     *HookRegistry[T]
	fields    filter.Fields[T]
	now       func() time.Time

	// entityName for error messages
	entityName string
	codePrefix string
}

// CatalogServiceConfig configures the catalog service.
type CatalogServiceConfig[T CatalogEntity] struct {
	Repo       CatalogRepository[T]
	TxManager  tx.Manager
	Codes      CodeGenerator // optional; without it codes must be supplied by the caller
	Fields     filter.Fields[T]
	EntityName string
	CodePrefix string
	// Clock stamps UpdatedAt on edits; nil means time.Now in UTC
	Clock func() time.Time
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T CatalogEntity](cfg CatalogServiceConfig[T]) *CatalogService[T] {
	now := cfg.Clock
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &CatalogService[T]{
		now:        now,
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		codes:      cfg.Codes,
		hooks:      NewHookRegistry[T](),
		fields:     cfg.Fields,
		entityName: cfg.EntityName,
		codePrefix: cfg.CodePrefix,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CatalogService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

// Fields returns the filterable fields of the entity.
func (s *CatalogService[T]) Fields() filter.Fields[T] {
	return s.fields
}

// EntityName returns the name used in errors and logs.
func (s *CatalogService[T]) EntityName() string {
	return s.entityName
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, entityID id.ID) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, entityID.String())
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", entityID.String())
}

func (s *CatalogService[T]) assignCode(ctx context.Context, entity T) error {
	if entity.GetCode() != "" {
		exists, err := s.repo.ExistsByCode(ctx, entity.GetCode())
		if err != nil {
			return fmt.Errorf("check %s code: %w", s.entityName, err)
		}
		if exists {
			return apperror.NewConflict(fmt.Sprintf("%s with this code already exists", s.entityName)).
				WithDetail("code", entity.GetCode())
		}
		return nil
	}
	if s.codes == nil {
		return apperror.NewValidation("code is required").WithDetail("field", "code")
	}
	code, err := s.codes.Next(ctx, s.codePrefix)
	if err != nil {
		return fmt.Errorf("generate %s code: %w", s.entityName, err)
	}
	entity.SetCode(code)
	return nil
}

// Create validates and stores a new entity, generating its code when empty.
func (s *CatalogService[T]) Create(ctx context.Context, entity T) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeCreate, entity); err != nil {
		return err
	}

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.assignCode(ctx, entity); err != nil {
			return err
		}
		if err := s.repo.Create(ctx, entity); err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterCreate, entity); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	logger.Info(ctx, "catalog record created",
		"entity", s.entityName,
		"id", entity.GetID(),
		"code", entity.GetCode(),
	)
	return nil
}

// GetByID retrieves entity by ID.
func (s *CatalogService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	entity, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return entity, s.normalizeGetErr(err, entityID)
	}
	return entity, nil
}

// Update validates and stores an existing entity, stamping its modification time.
func (s *CatalogService[T]) Update(ctx context.Context, entity T) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeUpdate, entity); err != nil {
		return err
	}

	entity.Touch(s.now())

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, entity); err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterUpdate, entity); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "error", err)
	}
	return nil
}

// Delete performs soft delete.
func (s *CatalogService[T]) Delete(ctx context.Context, entityID id.ID) error {
	entity, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return s.normalizeGetErr(err, entityID)
	}

	if err := s.hooks.Run(ctx, BeforeDelete, entity); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.SetDeletionMark(ctx, entityID, true); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterDelete, entity); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "entity", s.entityName, "error", err)
	}

	logger.Info(ctx, "catalog record deleted", "entity", s.entityName, "id", entityID)
	return nil
}

// All returns every active record, unfiltered.
func (s *CatalogService[T]) All(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.entityName, err)
	}
	return items, nil
}

// List fetches the collection, narrows it with the query and paginates the result.
func (s *CatalogService[T]) List(ctx context.Context, lf ListFilter) (ListResult[T], error) {
	criteria, err := s.fields.Build(lf.Query)
	if err != nil {
		return ListResult[T]{}, err
	}

	items, err := s.All(ctx)
	if err != nil {
		return ListResult[T]{}, err
	}

	matched := filter.Apply(items, criteria)
	return paginate(matched, lf.Limit, lf.Offset), nil
}

func paginate[T any](items []T, limit, offset int) ListResult[T] {
	total := len(items)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return ListResult[T]{
		Items:      items[offset:end],
		TotalCount: int64(total),
		Limit:      limit,
		Offset:     offset,
	}
}
