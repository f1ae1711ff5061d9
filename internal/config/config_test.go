package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "xlsx", cfg.Renderer.Kind)
	assert.Equal(t, 30*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  env: production
http:
  addr: ":9000"
renderer:
  kind: remote
  base_url: http://pdf.internal
  timeout: 5s
`), 0o600))

	t.Setenv("GESTOBRA_AUTH_JWT_SECRET", "from-env")
	t.Setenv("GESTOBRA_HTTP_ADDR", ":9100")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, ":9100", cfg.HTTP.Addr, "env wins over file")
	assert.Equal(t, "remote", cfg.Renderer.Kind)
	assert.Equal(t, 5*time.Second, cfg.Renderer.Timeout)
	assert.True(t, cfg.AuthEnabled())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("GESTOBRA_RENDERER_KIND", "remote")

	_, err := Load("")
	assert.ErrorContains(t, err, "renderer.base_url")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
