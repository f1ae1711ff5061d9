package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(files, dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	for _, e := range entries {
		body, err := fs.ReadFile(files, dir+"/"+e.Name())
		require.NoError(t, err)
		assert.Contains(t, string(body), "-- +goose Up", e.Name())
		assert.Contains(t, string(body), "-- +goose Down", e.Name())
	}
}

func TestSchema_StockCannotGoNegative(t *testing.T) {
	body, err := fs.ReadFile(files, dir+"/00001_catalogs.sql")
	require.NoError(t, err)

	// both inventory tables carry the constraint
	assert.Equal(t, 2, strings.Count(string(body), "CHECK (quantity_on_hand >= 0)"))
}
