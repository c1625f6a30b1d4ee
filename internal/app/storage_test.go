package app

import (
	"context"
	"github.com/datefy/datefy-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func TestOpenStorageSQLite(t *testing.T) {
	cfg := &config.Config{
		Storage: config.Storage{Driver: config.DriverSQLite},
		SQLite:  config.SQLite{Path: filepath.Join(t.TempDir(), "datefy.db")},
	}

	store, err := OpenStorage(cfg)
	require.NoError(t, err)
	defer store.Stop()

	assert.NoError(t, store.Ping(context.Background()))
}

func TestOpenStorageUnknownDriver(t *testing.T) {
	_, err := OpenStorage(&config.Config{Storage: config.Storage{Driver: "mongo"}})
	assert.ErrorContains(t, err, `unknown storage driver "mongo"`)
}
