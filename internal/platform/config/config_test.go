package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DefaultFixtureTimeout, cfg.FixtureTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.DBDSN)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
fixture_path: /srv/fixtures
fixture_timeout: 3s
log:
  level: debug
  format: json
`), 0o644))

	cfg, err := load(envOf(map[string]string{
		"CONFIG_FILE": path,
		"LOG_LEVEL":   "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "/srv/fixtures", cfg.FixturePath)
	assert.Equal(t, 3*time.Second, cfg.FixtureTimeout)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_BadTimeout(t *testing.T) {
	_, err := load(envOf(map[string]string{"FIXTURE_TIMEOUT": "soon"}))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(envOf(map[string]string{"CONFIG_FILE": "/nope/config.yaml"}))
	assert.Error(t, err)
}
