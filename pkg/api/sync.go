package api

import "time"

// CartItem представляет одну позицию корзины в wire-формате
type CartItem struct {
	UpdatedAt time.Time `json:"updated_at"`
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Variant   string    `json:"variant,omitempty"`
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// FavoriteItem представляет один элемент wishlist в wire-формате
type FavoriteItem struct {
	UpdatedAt time.Time `json:"updated_at"`
	ProductID string    `json:"product_id"`
}

// PriceAlert представляет price alert в wire-формате
type PriceAlert struct {
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
	ID          string     `json:"id"`
	ProductID   string     `json:"product_id"`
	TargetPrice float64    `json:"target_price"`
	IsActive    bool       `json:"is_active"`
}

// CartResponse представляет содержимое корзины пользователя
type CartResponse struct {
	Items []CartItem `json:"items"`
}

// UpsertCartRequest представляет запрос на запись корзины
type UpsertCartRequest struct {
	Items []CartItem `json:"items"`
}

// FavoritesResponse представляет wishlist пользователя
type FavoritesResponse struct {
	Items []FavoriteItem `json:"items"`
}

// UpsertFavoritesRequest представляет запрос на запись wishlist
type UpsertFavoritesRequest struct {
	Items []FavoriteItem `json:"items"`
}

// PriceAlertsResponse представляет price alerts пользователя
type PriceAlertsResponse struct {
	Alerts []PriceAlert `json:"alerts"`
}

// UpsertPriceAlertsRequest представляет запрос на запись price alerts
type UpsertPriceAlertsRequest struct {
	Alerts []PriceAlert `json:"alerts"`
}

// UpdatePriceAlertRequest представляет точечное обновление состояния alert.
// Используется evaluator-ом для фиксации срабатывания.
type UpdatePriceAlertRequest struct {
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
	IsActive    bool       `json:"is_active"`
}

// PreferencesResponse представляет preferences пользователя:
// один вложенный JSON объект, поле preferences записи профиля
type PreferencesResponse struct {
	Preferences map[string]any `json:"preferences"`
}

// UpsertPreferencesRequest представляет запрос на запись preferences
type UpsertPreferencesRequest struct {
	Preferences map[string]any `json:"preferences"`
}

// ProductPriceResponse представляет point read текущей цены товара
type ProductPriceResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// UpsertProductRequest представляет запрос на создание/обновление товара
// в каталоге reference-сервера
type UpsertProductRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
