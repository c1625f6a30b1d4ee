package main

import (
	"bytes"
	"context"
	"github.com/datefy/datefy-api/internal/lib/password"
	"github.com/datefy/datefy-api/internal/storage/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sqliteConfig writes a config pointing at a fresh database file and
// returns both paths.
func sqliteConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "datefy.db")
	cfgPath := filepath.Join(dir, "config.yaml")
	body := "env: local\nstorage:\n  driver: sqlite\nsqlite:\n  path: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))
	return cfgPath, dbPath
}

func TestRun_Success(t *testing.T) {
	cfgPath, dbPath := sqliteConfig(t)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)

	args := []string{"-config", cfgPath, "-nome", "Ana", "-email", "ana@example.com", "-senha", "s3nha"}
	require.NoError(t, run(args, new(bytes.Buffer), stdout, stderr))
	assert.Contains(t, stdout.String(), "User ana@example.com created successfully with ID 1")

	store, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer store.Stop()

	user, err := store.UserByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.NoError(t, password.Compare(user.PasswordHash, "s3nha"))
}

func TestRun_DuplicateEmail(t *testing.T) {
	cfgPath, _ := sqliteConfig(t)
	args := []string{"-config", cfgPath, "-email", "ana@example.com", "-senha", "s3nha"}

	require.NoError(t, run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer)), "first run should succeed")

	err := run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err, "expected error on duplicate email")
	assert.Equal(t, "Email já cadastrado.", err.Error())
}

func TestRun_MissingEmail(t *testing.T) {
	cfgPath, _ := sqliteConfig(t)
	stdout := new(bytes.Buffer)

	err := run([]string{"-config", cfgPath, "-senha", "x"}, new(bytes.Buffer), stdout, new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags")
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_InteractivePassword(t *testing.T) {
	cfgPath, _ := sqliteConfig(t)
	stdout := new(bytes.Buffer)
	stdin := bytes.NewBufferString("interactive_secret\n")

	err := run([]string{"-config", cfgPath, "-email", "bia@example.com"}, stdin, stdout, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Senha: ")
	assert.Contains(t, stdout.String(), "User bia@example.com created successfully")
}

func TestRun_InteractivePasswordEmpty(t *testing.T) {
	cfgPath, _ := sqliteConfig(t)

	err := run([]string{"-config", cfgPath, "-email", "bia@example.com"}, bytes.NewBufferString("\n"), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}

func TestRun_MissingConfigFile(t *testing.T) {
	args := []string{"-config", filepath.Join(t.TempDir(), "nope.yaml"), "-email", "a@example.com", "-senha", "x"}

	err := run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func TestRun_InvalidFlag(t *testing.T) {
	err := run([]string{"-invalid"}, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined")
}

func TestRun_LongPassword(t *testing.T) {
	cfgPath, _ := sqliteConfig(t)
	args := []string{"-config", cfgPath, "-email", "ana@example.com", "-senha", strings.Repeat("p", 100)}

	err := run(args, new(bytes.Buffer), new(bytes.Buffer), new(bytes.Buffer))
	require.NoError(t, err)
}
