package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashAuthKey хеширует auth key через SHA256.
// Детерминированный хеш: клиент отправляет его на сервер, сервер
// хранит и сравнивает. Медленная часть (Argon2id) уже выполнена
// на клиенте при деривации ключа.
func HashAuthKey(authKey []byte) (string, error) {
	if len(authKey) == 0 {
		return "", fmt.Errorf("auth key cannot be empty")
	}

	hash := sha256.Sum256(authKey)
	return hex.EncodeToString(hash[:]), nil
}

// VerifyAuthKeyHash сравнивает присланный клиентом хеш с сохраненным.
// Используется на сервере при логине.
func VerifyAuthKeyHash(authKeyHash, storedHash string) error {
	if authKeyHash == "" {
		return fmt.Errorf("auth key hash cannot be empty")
	}
	if storedHash == "" {
		return fmt.Errorf("stored hash cannot be empty")
	}
	if authKeyHash != storedHash {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}
