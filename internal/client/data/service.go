// Package data реализует локальные операции пользователя над кэшем
// доменов: корзина, избранное, настройки и price alerts. Все изменения
// пишутся в локальный кэш со свежим UpdatedAt; на сервер их доставляет
// следующий проход синхронизации.
package data

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/shopsync/internal/client/storage"
	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/internal/validation"
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс локальных операций над данными пользователя
type Service interface {
	// Cart
	AddCartItem(ctx context.Context, item models.CartItem) error
	UpdateCartQuantity(ctx context.Context, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, productID string) error
	ListCart(ctx context.Context) ([]models.CartItem, error)

	// Favorites
	ToggleFavorite(ctx context.Context, productID string) (bool, error)
	ListFavorites(ctx context.Context) ([]models.FavoriteItem, error)

	// Preferences
	SetPreference(ctx context.Context, key string, value any) error
	GetPreferences(ctx context.Context) (models.Preferences, error)

	// Price alerts
	CreatePriceAlert(ctx context.Context, productID string, targetPrice float64) (*models.PriceAlert, error)
	DeactivatePriceAlert(ctx context.Context, alertID string) error
	ListPriceAlerts(ctx context.Context) ([]models.PriceAlert, error)
}

type service struct {
	cache *storage.Cache
	now   func() time.Time
}

// NewService creates a new local data service over the domain cache
func NewService(cache *storage.Cache) Service {
	return &service{
		cache: cache,
		now:   time.Now,
	}
}

// AddCartItem добавляет позицию в корзину или заменяет существующую
// с тем же ProductID
func (s *service) AddCartItem(ctx context.Context, item models.CartItem) error {
	if err := validation.ValidateProductID(item.ProductID); err != nil {
		return err
	}
	if err := validation.ValidateQuantity(item.Quantity); err != nil {
		return err
	}

	cart, err := s.cache.Cart(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}

	item.UpdatedAt = s.now()

	replaced := false
	for i := range cart {
		if cart[i].ProductID == item.ProductID {
			cart[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		cart = append(cart, item)
	}

	return s.cache.SaveCart(ctx, cart)
}

// UpdateCartQuantity изменяет количество существующей позиции
func (s *service) UpdateCartQuantity(ctx context.Context, productID string, quantity int) error {
	if err := validation.ValidateQuantity(quantity); err != nil {
		return err
	}

	cart, err := s.cache.Cart(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}

	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity = quantity
			cart[i].UpdatedAt = s.now()
			return s.cache.SaveCart(ctx, cart)
		}
	}
	return fmt.Errorf("product %s is not in the cart", productID)
}

// RemoveCartItem удаляет позицию из локальной корзины
func (s *service) RemoveCartItem(ctx context.Context, productID string) error {
	cart, err := s.cache.Cart(ctx)
	if err != nil {
		return fmt.Errorf("failed to read cart: %w", err)
	}

	kept := cart[:0]
	for _, item := range cart {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(cart) {
		return fmt.Errorf("product %s is not in the cart", productID)
	}

	return s.cache.SaveCart(ctx, kept)
}

// ListCart возвращает локальную корзину
func (s *service) ListCart(ctx context.Context) ([]models.CartItem, error) {
	return s.cache.Cart(ctx)
}

// ToggleFavorite добавляет товар в избранное или убирает из него.
// Возвращает true, если товар теперь в избранном.
func (s *service) ToggleFavorite(ctx context.Context, productID string) (bool, error) {
	if err := validation.ValidateProductID(productID); err != nil {
		return false, err
	}

	favorites, err := s.cache.Favorites(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to read favorites: %w", err)
	}

	kept := favorites[:0]
	removed := false
	for _, f := range favorites {
		if f.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, f)
	}

	if !removed {
		kept = append(kept, models.FavoriteItem{
			ProductID: productID,
			UpdatedAt: s.now(),
		})
	}

	if err := s.cache.SaveFavorites(ctx, kept); err != nil {
		return false, err
	}
	return !removed, nil
}

// ListFavorites возвращает локальный wishlist
func (s *service) ListFavorites(ctx context.Context) ([]models.FavoriteItem, error) {
	return s.cache.Favorites(ctx)
}

// SetPreference записывает одно значение настроек
func (s *service) SetPreference(ctx context.Context, key string, value any) error {
	if key == "" {
		return fmt.Errorf("preference key cannot be empty")
	}

	prefs, err := s.cache.Preferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	prefs[key] = value
	return s.cache.SavePreferences(ctx, prefs)
}

// GetPreferences возвращает локальные настройки
func (s *service) GetPreferences(ctx context.Context) (models.Preferences, error) {
	return s.cache.Preferences(ctx)
}

// CreatePriceAlert создает новый активный alert на снижение цены
func (s *service) CreatePriceAlert(ctx context.Context, productID string, targetPrice float64) (*models.PriceAlert, error) {
	if err := validation.ValidateProductID(productID); err != nil {
		return nil, err
	}
	if err := validation.ValidateTargetPrice(targetPrice); err != nil {
		return nil, err
	}

	alerts, err := s.cache.PriceAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read alerts: %w", err)
	}

	alert := models.PriceAlert{
		ID:          uuid.New().String(),
		ProductID:   productID,
		TargetPrice: targetPrice,
		IsActive:    true,
		UpdatedAt:   s.now(),
	}
	alerts = append(alerts, alert)

	if err := s.cache.SavePriceAlerts(ctx, alerts); err != nil {
		return nil, err
	}
	return &alert, nil
}

// DeactivatePriceAlert выключает alert вручную. Сработавший alert
// трогать нельзя - он уже в терминальном состоянии.
func (s *service) DeactivatePriceAlert(ctx context.Context, alertID string) error {
	alerts, err := s.cache.PriceAlerts(ctx)
	if err != nil {
		return fmt.Errorf("failed to read alerts: %w", err)
	}

	for i := range alerts {
		if alerts[i].ID != alertID {
			continue
		}
		if alerts[i].Triggered() {
			return fmt.Errorf("alert %s already triggered", alertID)
		}
		alerts[i].IsActive = false
		alerts[i].UpdatedAt = s.now()
		return s.cache.SavePriceAlerts(ctx, alerts)
	}
	return fmt.Errorf("alert %s not found", alertID)
}

// ListPriceAlerts возвращает локальные price alerts
func (s *service) ListPriceAlerts(ctx context.Context) ([]models.PriceAlert, error) {
	return s.cache.PriceAlerts(ctx)
}
