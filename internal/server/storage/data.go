package storage

import (
	"context"

	"github.com/iudanet/shopsync/internal/models"
)

// DataStorage defines interface for per-user domain data persistence.
// Upsert-ы применяют server-side LWW guard по записям: строка
// перезаписывается только если присланный updated_at не старше
// сохраненного. Сработавшие price alerts не реактивируются.
type DataStorage interface {
	// GetCart retrieves all cart items for a user
	GetCart(ctx context.Context, userID string) ([]models.CartItem, error)

	// UpsertCart writes cart items, keeping newer stored rows intact
	UpsertCart(ctx context.Context, userID string, items []models.CartItem) error

	// GetPreferences retrieves the user's preferences document
	// Returns an empty document if none is stored
	GetPreferences(ctx context.Context, userID string) (models.Preferences, error)

	// UpsertPreferences replaces the user's preferences document
	UpsertPreferences(ctx context.Context, userID string, prefs models.Preferences) error

	// GetFavorites retrieves the user's wishlist
	GetFavorites(ctx context.Context, userID string) ([]models.FavoriteItem, error)

	// UpsertFavorites writes wishlist items, keeping newer stored rows intact
	UpsertFavorites(ctx context.Context, userID string, items []models.FavoriteItem) error

	// GetPriceAlerts retrieves all price alerts for a user
	GetPriceAlerts(ctx context.Context, userID string) ([]models.PriceAlert, error)

	// UpsertPriceAlerts writes alerts with the LWW guard;
	// a stored triggered alert never becomes active again
	UpsertPriceAlerts(ctx context.Context, userID string, alerts []models.PriceAlert) error

	// TriggerPriceAlert точечно фиксирует срабатывание alert
	// Returns ErrAlertNotFound if the alert doesn't belong to the user
	TriggerPriceAlert(ctx context.Context, userID string, alert *models.PriceAlert) error
}

// ProductStorage defines interface for the product catalog
type ProductStorage interface {
	// GetProduct retrieves a product with its current price
	// Returns ErrProductNotFound if product doesn't exist
	GetProduct(ctx context.Context, productID string) (*models.Product, error)

	// UpsertProduct creates or updates a catalog product
	UpsertProduct(ctx context.Context, product *models.Product) error
}
