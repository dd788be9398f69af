package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r!Secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NotEqual(t, "Sup3r!Secret", hash)
	assert.True(t, VerifyPassword("Sup3r!Secret", hash))
	assert.False(t, VerifyPassword("wrong-password", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("Sup3r!Secret")
	require.NoError(t, err)
	h2, err := HashPassword("Sup3r!Secret")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ
	assert.NotEqual(t, h1, h2)
	assert.True(t, VerifyPassword("Sup3r!Secret", h1))
	assert.True(t, VerifyPassword("Sup3r!Secret", h2))
}
