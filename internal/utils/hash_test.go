package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("super-secret")

	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "super-secret", hash, "hash must not equal the plaintext")
	assert.True(t, CheckPassword("super-secret", hash))
}

func TestHashPassword_DifferentSaltsPerCall(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)

	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt embeds a random salt, so two hashes of the same input differ.
	assert.NotEqual(t, first, second)
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("right password")
	require.NoError(t, err)

	assert.False(t, CheckPassword("wrong password", hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
}

func TestCheckPassword_EmptyHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", ""))
}
