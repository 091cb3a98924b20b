package storage

import "context"

//go:generate moq -out storage_mock.go . LocalStore

// LocalStore defines interface for on-device key/value persistent storage.
// Values are opaque string blobs; callers own the encoding.
type LocalStore interface {
	// Get retrieves a value by key
	// Returns ErrKeyNotFound if the key doesn't exist
	Get(ctx context.Context, key string) (string, error)

	// Set stores or overwrites a value
	Set(ctx context.Context, key, value string) error

	// Remove deletes a key (no-op if the key doesn't exist)
	Remove(ctx context.Context, key string) error

	// MultiRemove deletes several keys in one call
	MultiRemove(ctx context.Context, keys []string) error
}

// Ключи локального кэша доменов. Все значения JSON-encoded,
// кроме watermark - он хранится как ISO-8601 строка.
const (
	KeyLastSync    = "last_sync"
	KeyCart        = "cart_data"
	KeyPreferences = "user_preferences"
	KeyFavorites   = "favorites"
	KeyPriceAlerts = "price_alerts"
)

// CacheKeys возвращает все ключи локального кэша, включая watermark.
// Используется forceFullSync для полной очистки.
func CacheKeys() []string {
	return []string{KeyLastSync, KeyCart, KeyPreferences, KeyFavorites, KeyPriceAlerts}
}
