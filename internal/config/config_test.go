package config

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "env: prod\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, 3000, cfg.ApiPort)
	assert.Equal(t, "localhost", cfg.ApiHost)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "5432", cfg.Postgres.Port)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, "datefy.db", cfg.SQLite.Path)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "api_port: 8081\nstorage:\n  driver: postgres\n")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", ":memory:")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.ApiPort)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, ":memory:", cfg.SQLite.Path)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	path := writeConfig(t, "storage:\n  driver: mongo\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	_, err = Load("")
	assert.Error(t, err)
}

func TestPostgresURL(t *testing.T) {
	p := Postgres{Host: "db", Port: "5433", User: "u", Pass: "p@ss", Db: "datefy", SSLMode: "disable"}

	assert.Equal(t, "postgres://u:p%40ss@db:5433/datefy?sslmode=disable", p.URL())
}
