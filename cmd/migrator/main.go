package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/datefy/datefy-api/migrations"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "migrator:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("migrator", flag.ContinueOnError)

	var driver, dbUrl, migrationsPath, migrationsTable string
	var down bool

	fs.StringVar(&driver, "driver", "postgres", "database driver: postgres or sqlite")
	fs.StringVar(&dbUrl, "db-url", "datefy:datefy@localhost:5432/datefy_db", "db url connection (file path for sqlite)")
	fs.StringVar(&migrationsPath, "migrations-path", "", "path to migrations; the embedded set is used when empty")
	fs.StringVar(&migrationsTable, "migrations-table", "migrations", "name of migrations table")
	fs.BoolVar(&down, "down", false, "roll every migration back instead of applying")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if dbUrl == "" {
		return errors.New("storage path is required")
	}

	databaseURL, dir, err := target(driver, dbUrl, migrationsTable)
	if err != nil {
		return err
	}

	var m *migrate.Migrate
	if migrationsPath != "" {
		m, err = migrate.New("file://"+migrationsPath, databaseURL)
	} else {
		src, srcErr := iofs.New(migrations.FS, dir)
		if srcErr != nil {
			return srcErr
		}
		m, err = migrate.NewWithSourceInstance("iofs", src, databaseURL)
	}
	if err != nil {
		return err
	}
	defer m.Close()

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Fprintln(stdout, "no migrations to apply")
			return nil
		}
		return err
	}

	fmt.Fprintln(stdout, "migrations applied successfully")
	return nil
}

// target returns the migrate database URL and the embedded migrations
// directory for driver.
func target(driver, dbUrl, table string) (string, string, error) {
	switch driver {
	case "postgres":
		return fmt.Sprintf("postgresql://%s?x-migrations-table=%s&sslmode=disable", dbUrl, table), migrations.PostgresDir, nil
	case "sqlite":
		return fmt.Sprintf("sqlite://%s?x-migrations-table=%s", dbUrl, table), migrations.SQLiteDir, nil
	default:
		return "", "", fmt.Errorf("unknown driver %q", driver)
	}
}
