package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, SaltSize)

	salt2, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt1, salt2, "salts must be random")
}

func TestGenerateSaltBase64(t *testing.T) {
	saltBase64, err := GenerateSaltBase64()
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(saltBase64)
	require.NoError(t, err)
	assert.Len(t, decoded, SaltSize)
}

func TestDeriveAuthKey(t *testing.T) {
	salt := make([]byte, SaltSize)
	for i := range salt {
		salt[i] = byte(i)
	}

	key, err := DeriveAuthKey("password123", "alice", salt)
	require.NoError(t, err)
	assert.Len(t, key, Argon2KeyLen)

	// Детерминированность
	key2, err := DeriveAuthKey("password123", "alice", salt)
	require.NoError(t, err)
	assert.Equal(t, key, key2)

	// Другой пользователь с тем же паролем получает другой ключ
	keyBob, err := DeriveAuthKey("password123", "bob", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key, keyBob)

	// Другой пароль - другой ключ
	keyOther, err := DeriveAuthKey("password456", "alice", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key, keyOther)
}

func TestDeriveAuthKey_Validation(t *testing.T) {
	salt := make([]byte, SaltSize)

	_, err := DeriveAuthKey("", "alice", salt)
	assert.Error(t, err)

	_, err = DeriveAuthKey("password123", "", salt)
	assert.Error(t, err)

	_, err = DeriveAuthKey("password123", "alice", []byte("short"))
	assert.Error(t, err)
}

func TestDeriveAuthKeyFromBase64Salt(t *testing.T) {
	saltBase64, err := GenerateSaltBase64()
	require.NoError(t, err)

	key, err := DeriveAuthKeyFromBase64Salt("password123", "alice", saltBase64)
	require.NoError(t, err)
	assert.Len(t, key, Argon2KeyLen)

	_, err = DeriveAuthKeyFromBase64Salt("password123", "alice", "not-base64!!!")
	assert.Error(t, err)
}
