package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/internal/server/storage"
)

func TestDataStorage_CartRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "cartuser")

	items := []models.CartItem{
		{ProductID: "prod-1", Name: "Sneakers", Variant: "42", Quantity: 1, UnitPrice: 89.90, UpdatedAt: ts(10)},
		{ProductID: "prod-2", Name: "T-Shirt", Quantity: 3, UnitPrice: 15.00, UpdatedAt: ts(20)},
	}
	require.NoError(t, s.UpsertCart(ctx, userID, items))

	got, err := s.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, items, got)
}

func TestDataStorage_CartKeepsNewerStoredRow(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "cartuser")

	stored := models.CartItem{ProductID: "prod-1", Name: "Sneakers", Quantity: 2, UnitPrice: 89.90, UpdatedAt: ts(100)}
	require.NoError(t, s.UpsertCart(ctx, userID, []models.CartItem{stored}))

	// Устаревшая запись не должна перетереть более свежую
	stale := models.CartItem{ProductID: "prod-1", Name: "Sneakers", Quantity: 9, UnitPrice: 89.90, UpdatedAt: ts(50)}
	require.NoError(t, s.UpsertCart(ctx, userID, []models.CartItem{stale}))

	got, err := s.GetCart(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Quantity)
	assert.Equal(t, ts(100), got[0].UpdatedAt)

	// Равный timestamp принимается
	tied := models.CartItem{ProductID: "prod-1", Name: "Sneakers", Quantity: 5, UnitPrice: 89.90, UpdatedAt: ts(100)}
	require.NoError(t, s.UpsertCart(ctx, userID, []models.CartItem{tied}))

	got, err = s.GetCart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 5, got[0].Quantity)
}

func TestDataStorage_CartEmptyForUnknownUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	got, err := s.GetCart(ctx, uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDataStorage_PreferencesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "prefsuser")

	got, err := s.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, got)

	prefs := models.Preferences{
		"theme":    "dark",
		"currency": "EUR",
		"shipping": map[string]any{"city": "Berlin"},
	}
	require.NoError(t, s.UpsertPreferences(ctx, userID, prefs))

	got, err = s.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "dark", got["theme"])
	assert.Equal(t, "EUR", got["currency"])

	// Документ заменяется целиком
	require.NoError(t, s.UpsertPreferences(ctx, userID, models.Preferences{"theme": "light"}))

	got, err = s.GetPreferences(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, models.Preferences{"theme": "light"}, got)
}

func TestDataStorage_FavoritesRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "favuser")

	items := []models.FavoriteItem{
		{ProductID: "prod-1", UpdatedAt: ts(10)},
		{ProductID: "prod-2", UpdatedAt: ts(20)},
	}
	require.NoError(t, s.UpsertFavorites(ctx, userID, items))

	got, err := s.GetFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	// Более старая запись игнорируется
	require.NoError(t, s.UpsertFavorites(ctx, userID, []models.FavoriteItem{
		{ProductID: "prod-2", UpdatedAt: ts(5)},
	}))

	got, err = s.GetFavorites(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, ts(20), got[1].UpdatedAt)
}

func TestDataStorage_PriceAlertsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "alertuser")

	triggeredAt := ts(30)
	alerts := []models.PriceAlert{
		{ID: "alert-1", ProductID: "prod-1", TargetPrice: 50, IsActive: true, UpdatedAt: ts(10)},
		{ID: "alert-2", ProductID: "prod-2", TargetPrice: 99.99, IsActive: false, TriggeredAt: &triggeredAt, UpdatedAt: ts(30)},
	}
	require.NoError(t, s.UpsertPriceAlerts(ctx, userID, alerts))

	got, err := s.GetPriceAlerts(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, alerts, got)
}

func TestDataStorage_PriceAlertsKeepNewerStoredRow(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "alertuser")

	stored := models.PriceAlert{ID: "alert-1", ProductID: "prod-1", TargetPrice: 80, IsActive: true, UpdatedAt: ts(100)}
	require.NoError(t, s.UpsertPriceAlerts(ctx, userID, []models.PriceAlert{stored}))

	stale := models.PriceAlert{ID: "alert-1", ProductID: "prod-1", TargetPrice: 60, IsActive: true, UpdatedAt: ts(50)}
	require.NoError(t, s.UpsertPriceAlerts(ctx, userID, []models.PriceAlert{stale}))

	got, err := s.GetPriceAlerts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 80.0, got[0].TargetPrice)
}

func TestDataStorage_TriggeredAlertStaysTriggered(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "alertuser")

	triggeredAt := ts(50)
	stored := models.PriceAlert{
		ID: "alert-1", ProductID: "prod-1", TargetPrice: 80,
		IsActive: false, TriggeredAt: &triggeredAt, UpdatedAt: ts(50),
	}
	require.NoError(t, s.UpsertPriceAlerts(ctx, userID, []models.PriceAlert{stored}))

	// Клиент с более свежей, но несработавшей версией не может
	// реактивировать сработавший alert
	revived := models.PriceAlert{
		ID: "alert-1", ProductID: "prod-1", TargetPrice: 80,
		IsActive: true, TriggeredAt: nil, UpdatedAt: ts(200),
	}
	require.NoError(t, s.UpsertPriceAlerts(ctx, userID, []models.PriceAlert{revived}))

	got, err := s.GetPriceAlerts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsActive)
	require.NotNil(t, got[0].TriggeredAt)
	assert.Equal(t, triggeredAt, *got[0].TriggeredAt)
	assert.NoError(t, got[0].Validate())
}

func TestDataStorage_TriggerPriceAlert(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "alertuser")

	alert := models.PriceAlert{ID: "alert-1", ProductID: "prod-1", TargetPrice: 80, IsActive: true, UpdatedAt: ts(10)}
	require.NoError(t, s.UpsertPriceAlerts(ctx, userID, []models.PriceAlert{alert}))

	require.NoError(t, alert.Trigger(ts(60)))
	require.NoError(t, s.TriggerPriceAlert(ctx, userID, &alert))

	got, err := s.GetPriceAlerts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].IsActive)
	require.NotNil(t, got[0].TriggeredAt)
	assert.Equal(t, ts(60), *got[0].TriggeredAt)
}

func TestDataStorage_TriggerPriceAlertNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "alertuser")

	missing := models.PriceAlert{ID: uuid.New().String(), ProductID: "prod-1", UpdatedAt: ts(10)}
	err := s.TriggerPriceAlert(ctx, userID, &missing)
	assert.ErrorIs(t, err, storage.ErrAlertNotFound)
}

func TestDataStorage_DomainsIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	require.NoError(t, s.UpsertFavorites(ctx, alice, []models.FavoriteItem{
		{ProductID: "prod-1", UpdatedAt: ts(10)},
	}))

	got, err := s.GetFavorites(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// setupTestStorage создает in-memory storage для тестов
func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	storage, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.Close()
	}

	return storage, cleanup
}

func createTestUser(t *testing.T, s *Storage, username string) string {
	t.Helper()

	user := &models.User{
		ID:          uuid.New().String(),
		Username:    username,
		AuthKeyHash: "hash-" + username,
		PublicSalt:  "salt-" + username,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user.ID
}

// ts возвращает детерминированный timestamp с миллисекундной точностью
func ts(offset int) time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(offset) * time.Second)
}
