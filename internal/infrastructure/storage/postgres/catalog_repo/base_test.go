package catalog_repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestobra/internal/core/apperror"
	"gestobra/internal/core/id"
	"gestobra/internal/domain/catalogs/material"
	"gestobra/internal/domain/catalogs/tool"
	"gestobra/internal/infrastructure/storage/postgres"
)

// recordingQuerier captures the last Exec and answers with a fixed command tag.
type recordingQuerier struct {
	tag  string
	sql  string
	args []any
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sql, q.args = sql, args
	return pgconn.NewCommandTag(q.tag), nil
}

func (q *recordingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not supported")
}

func (q *recordingQuerier) QueryRow(context.Context, string, ...any) pgx.Row {
	return nil
}

func newMaterialBase() *BaseCatalogRepo[*material.Material] {
	return NewBaseCatalogRepo(nil, "cat_materials", "material",
		func() *material.Material { return &material.Material{} })
}

func TestBaseCatalogRepo_Columns(t *testing.T) {
	r := newMaterialBase()

	assert.ElementsMatch(t, []string{
		"id", "deletion_mark", "version", "created_at", "updated_at",
		"code", "name", "quantity_on_hand", "minimum_quantity",
		"unit", "unit_price", "description",
	}, r.selectCols)
}

func TestBaseCatalogRepo_ListQuery(t *testing.T) {
	sql, args, err := newMaterialBase().listQuery().ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "FROM cat_materials WHERE deletion_mark = $1 ORDER BY name ASC, code ASC")
	assert.Equal(t, []any{false}, args)
}

func TestBaseCatalogRepo_ForUpdateQuery(t *testing.T) {
	itemID := id.New()

	sql, args, err := newMaterialBase().forUpdateQuery(itemID).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE id = $1 AND deletion_mark = $2")
	assert.True(t, len(sql) > 0 && sql[len(sql)-len("FOR UPDATE"):] == "FOR UPDATE")
	assert.Equal(t, []any{itemID, false}, args)
}

func TestBaseCatalogRepo_UpdateQuery_OptimisticLock(t *testing.T) {
	m := material.NewMaterial("Cemento", "bolsa", decimal.NewFromInt(10), decimal.NewFromInt(2))
	m.Version = 4

	q, entityID, err := newMaterialBase().updateQuery(m)
	require.NoError(t, err)
	assert.Equal(t, m.ID, entityID)

	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "UPDATE cat_materials SET")
	assert.Contains(t, sql, "version = version + 1")
	assert.NotContains(t, sql, "created_at")
	assert.Contains(t, sql, "WHERE id = $")
	assert.Equal(t, 4, args[len(args)-1])
}

func TestBaseCatalogRepo_InsertQuery(t *testing.T) {
	m := material.NewMaterial("Arena", "m3", decimal.Zero, decimal.Zero)

	q, err := newMaterialBase().insertQuery(m)
	require.NoError(t, err)

	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "INSERT INTO cat_materials")
	assert.Len(t, args, 12)
}

func TestBaseCatalogRepo_ExistsQuery(t *testing.T) {
	sql, args, err := newMaterialBase().
		existsQuery(squirrel.Eq{"code": "MAT-2026-00001", "deletion_mark": false}).
		ToSql()
	require.NoError(t, err)

	// squirrel sorts Eq keys
	assert.Equal(t, "SELECT 1 FROM cat_materials WHERE code = $1 AND deletion_mark = $2 LIMIT 1", sql)
	assert.Equal(t, []any{"MAT-2026-00001", false}, args)
}

func TestInventoryRepo_BalanceQuery(t *testing.T) {
	base := NewBaseCatalogRepo(nil, "cat_tools", "tool",
		func() *tool.Tool { return &tool.Tool{} })
	r := NewInventoryRepo(base)

	tl := tool.NewTool("Taladro", decimal.NewFromInt(3), decimal.NewFromInt(1))
	tl.Version = 2
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tl.UpdatedAt = at

	sql, args, err := r.balanceQuery(tl).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE cat_tools SET quantity_on_hand = $1, updated_at = $2, version = version + 1 WHERE id = $3 AND version = $4",
		sql)
	require.Len(t, args, 4)
	assert.True(t, decimal.NewFromInt(3).Equal(args[0].(decimal.Decimal)))
	assert.Equal(t, at, args[1])
	assert.Equal(t, tl.ID, args[2])
	assert.Equal(t, 2, args[3])
}

func TestBaseCatalogRepo_Update(t *testing.T) {
	stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	edited := time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		tag         string
		wantVersion int
		wantCode    string
	}{
		{name: "applied", tag: "UPDATE 1", wantVersion: 5},
		{name: "stale version", tag: "UPDATE 0", wantVersion: 4, wantCode: apperror.CodeConcurrentModification},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := material.NewMaterial("Cemento", "bolsa", decimal.NewFromInt(10), decimal.NewFromInt(2))
			m.Version = 4
			m.UpdatedAt = stale
			m.Balance.MinimumQuantity = decimal.NewFromInt(5)
			m.Touch(edited)

			q := &recordingQuerier{tag: tt.tag}
			r := newMaterialBase()
			r.querierFor = func(context.Context) postgres.Querier { return q }

			err := r.Update(context.Background(), m)

			if tt.wantCode != "" {
				assert.True(t, apperror.HasCode(err, tt.wantCode))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantVersion, m.Version)
			assert.Contains(t, q.sql, "updated_at = $")
			assert.Contains(t, q.args, edited)
			assert.NotContains(t, q.args, stale)
		})
	}
}
