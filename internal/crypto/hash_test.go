package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAuthKey(t *testing.T) {
	key := []byte("some-auth-key-material-32-bytes!")

	hash1, err := HashAuthKey(key)
	require.NoError(t, err)
	assert.Len(t, hash1, 64) // hex-encoded SHA256

	// Детерминированность
	hash2, err := HashAuthKey(key)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)

	_, err = HashAuthKey(nil)
	assert.Error(t, err)
}

func TestVerifyAuthKeyHash(t *testing.T) {
	key := []byte("some-auth-key-material-32-bytes!")
	hash, err := HashAuthKey(key)
	require.NoError(t, err)

	assert.NoError(t, VerifyAuthKeyHash(hash, hash))
	assert.Error(t, VerifyAuthKeyHash(hash, "deadbeef"))
	assert.Error(t, VerifyAuthKeyHash("", hash))
	assert.Error(t, VerifyAuthKeyHash(hash, ""))
}
