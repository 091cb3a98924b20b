package models

import "time"

// CartItem представляет одну позицию корзины.
// Натуральный ключ записи - ProductID: у пользователя не может быть
// двух строк корзины для одного товара.
type CartItem struct {
	UpdatedAt time.Time `json:"updated_at"` // время последнего изменения (для LWW)
	ProductID string    `json:"product_id"`
	Name      string    `json:"name"`
	Variant   string    `json:"variant,omitempty"` // размер/цвет/модификация
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"` // снимок цены на момент добавления
}

// Key возвращает натуральный ключ записи для keyed merge
func (i CartItem) Key() string {
	return i.ProductID
}

// ModifiedAt возвращает timestamp записи для LWW разрешения конфликтов
func (i CartItem) ModifiedAt() time.Time {
	return i.UpdatedAt
}
