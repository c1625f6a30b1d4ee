package password

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"strings"
	"testing"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("s3nha")
	require.NoError(t, err)

	assert.NotEqual(t, "s3nha", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)

	assert.NoError(t, Compare(hash, "s3nha"))
	assert.ErrorIs(t, Compare(hash, "outra"), ErrMismatch)
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCompareMalformedHash(t *testing.T) {
	err := Compare("not-a-bcrypt-hash", "x")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}

func TestLongPasswordsAreTruncated(t *testing.T) {
	long := strings.Repeat("p", MaxLength+1)

	hash, err := Hash(long)
	require.NoError(t, err)

	assert.NoError(t, Compare(hash, long))
	assert.NoError(t, Compare(hash, long[:MaxLength]), "only the first 72 bytes count")
	assert.ErrorIs(t, Compare(hash, long[:MaxLength-1]), ErrMismatch)
}
