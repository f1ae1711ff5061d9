package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"gestobra/internal/core/apperror"
	"gestobra/internal/domain/stock"
	"gestobra/internal/infrastructure/storage/postgres"
)

// inventoryItem is a stored stock item: materials and tools.
type inventoryItem interface {
	stock.Item
	record
}

// InventoryRepo adds balance persistence to a catalog repository.
type InventoryRepo[T inventoryItem] struct {
	*BaseCatalogRepo[T]
}

// NewInventoryRepo wraps base with UpdateBalance.
func NewInventoryRepo[T inventoryItem](base *BaseCatalogRepo[T]) *InventoryRepo[T] {
	return &InventoryRepo[T]{BaseCatalogRepo: base}
}

// UpdateBalance writes the quantity on hand produced by the ledger.
// The row is expected to be locked by GetForUpdate; the version check still
// guards against a caller that skipped the lock. The table CHECK constraint
// rejects a negative quantity as a last line.
func (r *InventoryRepo[T]) UpdateBalance(ctx context.Context, item T) error {
	sql, args, err := r.balanceQuery(item).ToSql()
	if err != nil {
		return fmt.Errorf("build balance update: %w", err)
	}

	result, err := r.querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if isCheckViolation(err) {
			return apperror.NewInsufficientStock(item.GetID().String(),
				item.CurrentBalance().QuantityOnHand.String(), "0").WithCause(err)
		}
		return fmt.Errorf("update %s balance: %w", r.tableName, err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewConcurrentModification(r.entityName, item.GetID())
	}

	item.SetVersion(item.GetVersion() + 1)
	return nil
}

func (r *InventoryRepo[T]) balanceQuery(item T) squirrel.UpdateBuilder {
	data := map[string]any{
		"quantity_on_hand": item.CurrentBalance().QuantityOnHand,
	}
	if at, ok := postgres.StructToMap(item)["updated_at"]; ok {
		data["updated_at"] = at
	}

	return r.Builder().
		Update(r.tableName).
		SetMap(data).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"id": item.GetID()}).
		Where(squirrel.Eq{"version": item.GetVersion()})
}
