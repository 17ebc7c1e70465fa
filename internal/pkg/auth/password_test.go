package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	require.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPassword(hash, "admin123"))
	assert.False(t, CheckPassword(hash, "admin124"))
}

func TestIsBcryptHash(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.True(t, IsBcryptHash(hash))
	assert.False(t, IsBcryptHash("admin123"))
	assert.False(t, IsBcryptHash(""))
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("admin123", "admin123"))
	assert.False(t, SecureCompare("admin123", "admin124"))
	assert.False(t, SecureCompare("admin123", ""))
}
