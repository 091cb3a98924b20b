package models

import "time"

// Product представляет товар каталога с текущей ценой.
// Evaluator price alert-ов читает цену отсюда point read-ом.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	UpdatedAt time.Time `json:"updated_at"`
}
