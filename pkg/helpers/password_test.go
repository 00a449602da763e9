package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, PasswordMatches(hash, "correct horse battery"))
	assert.False(t, PasswordMatches(hash, "wrong password"))
}

func TestHashPassword_SaltsEachHash(t *testing.T) {
	a, err := HashPassword("same-input-pw")
	require.NoError(t, err)
	b, err := HashPassword("same-input-pw")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
