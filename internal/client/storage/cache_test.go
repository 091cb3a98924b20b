package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shopsync/internal/models"
)

// newMemStore возвращает LocalStoreMock поверх обычной map
func newMemStore() *LocalStoreMock {
	data := make(map[string]string)
	return &LocalStoreMock{
		GetFunc: func(ctx context.Context, key string) (string, error) {
			value, ok := data[key]
			if !ok {
				return "", ErrKeyNotFound
			}
			return value, nil
		},
		SetFunc: func(ctx context.Context, key, value string) error {
			data[key] = value
			return nil
		},
		RemoveFunc: func(ctx context.Context, key string) error {
			delete(data, key)
			return nil
		},
		MultiRemoveFunc: func(ctx context.Context, keys []string) error {
			for _, key := range keys {
				delete(data, key)
			}
			return nil
		},
	}
}

func TestCache_CartRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(newMemStore())

	// Пустой кэш - пустая корзина, не ошибка
	items, err := cache.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	want := []models.CartItem{{
		ProductID: "prod-1",
		Name:      "Keyboard",
		Quantity:  2,
		UnitPrice: 49.90,
		UpdatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}}
	require.NoError(t, cache.SaveCart(ctx, want))

	got, err := cache.Cart(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCache_PreferencesRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(newMemStore())

	prefs, err := cache.Preferences(ctx)
	require.NoError(t, err)
	assert.NotNil(t, prefs)
	assert.Empty(t, prefs)

	require.NoError(t, cache.SavePreferences(ctx, models.Preferences{"theme": "dark"}))

	prefs, err = cache.Preferences(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs["theme"])
}

func TestCache_SyncState(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	cache := NewCache(store)

	state, err := cache.SyncState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.LastSync)

	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, cache.SaveSyncState(ctx, ts))

	// Watermark хранится как ISO-8601, не JSON
	raw, err := store.Get(ctx, KeyLastSync)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01T12:30:00Z", raw)

	state, err = cache.SyncState(ctx)
	require.NoError(t, err)
	require.NotNil(t, state.LastSync)
	assert.True(t, state.LastSync.Equal(ts))
}

func TestCache_CorruptWatermarkTreatedAsMissing(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	cache := NewCache(store)

	require.NoError(t, store.Set(ctx, KeyLastSync, "not-a-timestamp"))

	state, err := cache.SyncState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.LastSync)
}

func TestCache_Clear(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	cache := NewCache(store)

	require.NoError(t, cache.SaveCart(ctx, []models.CartItem{{ProductID: "prod-1", Quantity: 1, UpdatedAt: time.Now()}}))
	require.NoError(t, cache.SaveSyncState(ctx, time.Now()))

	require.NoError(t, cache.Clear(ctx))

	state, err := cache.SyncState(ctx)
	require.NoError(t, err)
	assert.Nil(t, state.LastSync)

	items, err := cache.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Clear должен удалять все пять ключей одним вызовом
	calls := store.MultiRemoveCalls()
	require.Len(t, calls, 1)
	assert.ElementsMatch(t, CacheKeys(), calls[0].Keys)
}
