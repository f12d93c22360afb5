package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasher_HashAndVerify(t *testing.T) {
	var hasher Hasher

	hash, err := hasher.Hash("widowblackout")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, hasher.Verify("widowblackout", hash))
	assert.False(t, hasher.Verify("widowblackout ", hash))
	assert.False(t, hasher.Verify("ironman", hash))
}

func TestHasher_HashIsSalted(t *testing.T) {
	var hasher Hasher

	first, err := hasher.Hash("hulky-smash")
	require.NoError(t, err)
	second, err := hasher.Hash("hulky-smash")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("hulky-smash", first))
	assert.True(t, hasher.Verify("hulky-smash", second))
}

func TestHasher_NeverStoresPlaintext(t *testing.T) {
	var hasher Hasher

	hash, err := hasher.Hash("supersecret")
	require.NoError(t, err)
	assert.False(t, strings.Contains(hash, "supersecret"))
}

func TestHasher_VerifyMalformedDigest(t *testing.T) {
	var hasher Hasher

	assert.False(t, hasher.Verify("anything", ""))
	assert.False(t, hasher.Verify("anything", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Verify("anything", "$2a$garbage"))
}
