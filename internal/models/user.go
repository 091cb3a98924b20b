package models

import "time"

// User представляет покупателя в системе
type User struct {
	ID          string    `json:"id"`            // UUID пользователя
	Username    string    `json:"username"`      // уникальный username
	AuthKeyHash string    `json:"auth_key_hash"` // SHA256 хеш auth_key
	PublicSalt  string    `json:"public_salt"`   // base64 encoded salt (32 bytes)
	CreatedAt   time.Time `json:"created_at"`    // время создания
	UpdatedAt   time.Time `json:"updated_at"`    // время последнего обновления
}
