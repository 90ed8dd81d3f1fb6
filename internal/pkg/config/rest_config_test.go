//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInitializeRestConfig(t *testing.T) {
	validConfig := `
port: "8080"
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: keyvault.db
  db_name: keyvault
`

	t.Run("valid config", func(t *testing.T) {
		path := writeConfigFile(t, validConfig)

		cfg, err := InitializeRestConfig(path)
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, LogLevelInfo, cfg.Logger.LogLevel)
		assert.Equal(t, DBTypeSqlite, cfg.Database.Type)
		assert.Equal(t, "keyvault.db", cfg.Database.DSN)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfigFile(t, "port: [unclosed")

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("missing port", func(t *testing.T) {
		path := writeConfigFile(t, `
logger:
  log_level: info
  log_type: console
database:
  type: sqlite
  dsn: keyvault.db
  db_name: keyvault
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid logger settings", func(t *testing.T) {
		path := writeConfigFile(t, `
port: "8080"
logger:
  log_level: loud
  log_type: console
database:
  type: sqlite
  dsn: keyvault.db
  db_name: keyvault
`)

		_, err := InitializeRestConfig(path)
		assert.Error(t, err)
	})
}
