package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shopsync/internal/client/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "shopsync-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestStorage_GetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Get(ctx, "cart_data")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "cart_data", `[{"product_id":"prod-1"}]`))

	value, err := s.Get(ctx, "cart_data")
	require.NoError(t, err)
	assert.Equal(t, `[{"product_id":"prod-1"}]`, value)

	require.NoError(t, s.Remove(ctx, "cart_data"))
	_, err = s.Get(ctx, "cart_data")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Remove несуществующего ключа - no-op
	require.NoError(t, s.Remove(ctx, "cart_data"))
}

func TestStorage_MultiRemove(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	for _, key := range storage.CacheKeys() {
		require.NoError(t, s.Set(ctx, key, "value"))
	}

	require.NoError(t, s.MultiRemove(ctx, storage.CacheKeys()))

	for _, key := range storage.CacheKeys() {
		_, err := s.Get(ctx, key)
		assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	}
}

func TestStorage_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.Session{
		UserID:      "user-1",
		Username:    "alice",
		AccessToken: "token",
		ExpiresAt:   time.Now().Add(time.Hour).UTC(),
	}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, got.UserID)
	assert.Equal(t, session.Username, got.Username)
	assert.Equal(t, session.AccessToken, got.AccessToken)
	assert.True(t, got.Valid(time.Now()))

	require.NoError(t, s.DeleteSession(ctx))
	_, err = s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestStorage_SessionIsolatedFromCache(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	require.NoError(t, s.SaveSession(ctx, &storage.Session{UserID: "user-1", AccessToken: "token", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, s.Set(ctx, "cart_data", "[]"))

	// Очистка доменного кэша не должна трогать сессию
	require.NoError(t, s.MultiRemove(ctx, storage.CacheKeys()))

	_, err := s.GetSession(ctx)
	require.NoError(t, err)
}
