package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Empty(t, cfg.DuckDBPath)
	assert.Empty(t, cfg.AuthorsFile)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 10, cfg.Booklet.Rounds)
	assert.Equal(t, "authorquiz.epub", cfg.Booklet.Output)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(`
env: production
store: duckdb
seed: 42
booklet:
  rounds: 3
`), 0644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, StoreDuckDB, cfg.Store)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 3, cfg.Booklet.Rounds)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("AUTHORQUIZ_STORE", "duckdb")
	t.Setenv("AUTHORQUIZ_BOOKLET_ROUNDS", "5")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, StoreDuckDB, cfg.Store)
	assert.Equal(t, 5, cfg.Booklet.Rounds)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("AUTHORQUIZ_ENV=production\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("AUTHORQUIZ_ENV") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoadExplicitFileMissing(t *testing.T) {
	dir := chdirTemp(t)

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	chdirTemp(t)
	t.Setenv("AUTHORQUIZ_STORE", "postgres")

	_, err := Load("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStore))
}

func TestValidateBookletRounds(t *testing.T) {
	cfg := &Config{Store: StoreMemory, Booklet: Booklet{Rounds: 0}}
	assert.Error(t, cfg.Validate())
}
