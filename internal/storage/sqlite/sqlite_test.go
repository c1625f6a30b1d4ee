package sqlite

import (
	"context"
	"github.com/datefy/datefy-api/internal/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"testing"
)

func TestStorageSuite(t *testing.T) {
	suite.Run(t, &storagetest.Suite{
		Open: func() (storagetest.Storage, error) {
			return New(":memory:")
		},
	})
}

func TestNewIsIdempotentOnSameFile(t *testing.T) {
	path := t.TempDir() + "/datefy.db"

	first, err := New(path)
	require.NoError(t, err)
	_, err = first.SaveUser(context.Background(), "Ana", "ana@example.com", "hash")
	require.NoError(t, err)
	require.NoError(t, first.Stop())

	second, err := New(path)
	require.NoError(t, err, "reopening must not re-run applied migrations")
	defer second.Stop()

	u, err := second.UserByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)
}
