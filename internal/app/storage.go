// Package app assembles the pieces shared by the binaries.
package app

import (
	"fmt"
	"github.com/datefy/datefy-api/internal/api"
	"github.com/datefy/datefy-api/internal/config"
	"github.com/datefy/datefy-api/internal/storage/postgres"
	"github.com/datefy/datefy-api/internal/storage/sqlite"
)

type Storage interface {
	api.Storage
	Stop() error
}

// OpenStorage connects to the store selected by cfg.Storage.Driver.
func OpenStorage(cfg *config.Config) (Storage, error) {
	const op = "app.OpenStorage"

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		s, err := postgres.New(cfg.Postgres.URL(), postgres.Pool{
			MaxOpenConns: cfg.Postgres.MaxOpenConns,
			MaxIdleConns: cfg.Postgres.MaxIdleConns,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return s, nil
	case config.DriverSQLite:
		s, err := sqlite.New(cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Storage.Driver)
	}
}
