package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/shopsync/internal/models"
)

// Cache - типизированный слой над LocalStore для доменного кэша.
// Отвечает за JSON кодирование записей доменов и формат watermark.
// Отсутствие ключа не ошибка: домен просто еще не кэшировался.
type Cache struct {
	store LocalStore
}

// NewCache creates a typed domain cache over any LocalStore
func NewCache(store LocalStore) *Cache {
	return &Cache{store: store}
}

// Cart возвращает кэшированную корзину (пустую, если ключа нет)
func (c *Cache) Cart(ctx context.Context) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := c.getJSON(ctx, KeyCart, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveCart сохраняет merged корзину в локальный кэш
func (c *Cache) SaveCart(ctx context.Context, items []models.CartItem) error {
	return c.setJSON(ctx, KeyCart, items)
}

// Preferences возвращает кэшированные настройки (пустые, если ключа нет)
func (c *Cache) Preferences(ctx context.Context) (models.Preferences, error) {
	var prefs models.Preferences
	if err := c.getJSON(ctx, KeyPreferences, &prefs); err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = models.Preferences{}
	}
	return prefs, nil
}

// SavePreferences сохраняет merged настройки в локальный кэш
func (c *Cache) SavePreferences(ctx context.Context, prefs models.Preferences) error {
	return c.setJSON(ctx, KeyPreferences, prefs)
}

// Favorites возвращает кэшированный wishlist (пустой, если ключа нет)
func (c *Cache) Favorites(ctx context.Context) ([]models.FavoriteItem, error) {
	var items []models.FavoriteItem
	if err := c.getJSON(ctx, KeyFavorites, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveFavorites сохраняет merged wishlist в локальный кэш
func (c *Cache) SaveFavorites(ctx context.Context, items []models.FavoriteItem) error {
	return c.setJSON(ctx, KeyFavorites, items)
}

// PriceAlerts возвращает кэшированные price alerts (пустые, если ключа нет)
func (c *Cache) PriceAlerts(ctx context.Context) ([]models.PriceAlert, error) {
	var alerts []models.PriceAlert
	if err := c.getJSON(ctx, KeyPriceAlerts, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// SavePriceAlerts сохраняет merged price alerts в локальный кэш
func (c *Cache) SavePriceAlerts(ctx context.Context, alerts []models.PriceAlert) error {
	return c.setJSON(ctx, KeyPriceAlerts, alerts)
}

// SyncState возвращает watermark последней успешной синхронизации.
// Если watermark отсутствует или не парсится, возвращает пустое состояние:
// битый watermark эквивалентен "никогда не синхронизировались".
func (c *Cache) SyncState(ctx context.Context) (models.SyncState, error) {
	raw, err := c.store.Get(ctx, KeyLastSync)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return models.SyncState{}, nil
		}
		return models.SyncState{}, fmt.Errorf("failed to read last_sync: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return models.SyncState{}, nil
	}
	return models.SyncState{LastSync: &ts}, nil
}

// SaveSyncState записывает новый watermark как ISO-8601 строку
func (c *Cache) SaveSyncState(ctx context.Context, lastSync time.Time) error {
	if err := c.store.Set(ctx, KeyLastSync, lastSync.UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to save last_sync: %w", err)
	}
	return nil
}

// Clear удаляет все ключи доменного кэша и watermark.
// Удаленные данные не трогаются - только локальная копия.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.store.MultiRemove(ctx, CacheKeys()); err != nil {
		return fmt.Errorf("failed to clear domain cache: %w", err)
	}
	return nil
}

// getJSON читает и декодирует значение; отсутствие ключа не ошибка
func (c *Cache) getJSON(ctx context.Context, key string, out any) error {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

// setJSON кодирует и записывает значение под заданным ключом
func (c *Cache) setJSON(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := c.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
