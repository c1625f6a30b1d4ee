package main

import (
	"bytes"
	"database/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
	"path/filepath"
	"testing"
)

func TestRunSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datefy.db")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-driver", "sqlite", "-db-url", path}, &out))
	assert.Equal(t, "migrations applied successfully\n", out.String())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"usuarios", "tarefas", "financas", "lembretes"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		assert.NoError(t, err, table)
	}

	out.Reset()
	require.NoError(t, run([]string{"-driver", "sqlite", "-db-url", path}, &out))
	assert.Equal(t, "no migrations to apply\n", out.String())
}

func TestRunRejectsUnknownDriver(t *testing.T) {
	err := run([]string{"-driver", "oracle"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown driver "oracle"`)
}

func TestTarget(t *testing.T) {
	url, dir, err := target("postgres", "u:p@db:5432/datefy", "migrations")
	require.NoError(t, err)
	assert.Equal(t, "postgresql://u:p@db:5432/datefy?x-migrations-table=migrations&sslmode=disable", url)
	assert.Equal(t, "postgres", dir)
}
