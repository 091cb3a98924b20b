package models

import "time"

// FavoriteItem представляет один элемент избранного (wishlist).
type FavoriteItem struct {
	UpdatedAt time.Time `json:"updated_at"`
	ProductID string    `json:"product_id"`
}

// Key возвращает натуральный ключ записи для keyed merge
func (f FavoriteItem) Key() string {
	return f.ProductID
}

// ModifiedAt возвращает timestamp записи для LWW разрешения конфликтов
func (f FavoriteItem) ModifiedAt() time.Time {
	return f.UpdatedAt
}
