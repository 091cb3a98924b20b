// Package validation содержит проверки пользовательского ввода,
// общие для клиента и сервера.
package validation

import (
	"fmt"
	"regexp"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,32}$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxCartQuantity верхняя граница количества одной позиции корзины
	MaxCartQuantity = 999
)

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateQuantity проверяет количество позиции корзины
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	if quantity > MaxCartQuantity {
		return fmt.Errorf("quantity must not exceed %d", MaxCartQuantity)
	}
	return nil
}

// ValidateTargetPrice проверяет целевую цену price alert
func ValidateTargetPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("target price must be positive")
	}
	return nil
}

// ValidateProductID проверяет идентификатор товара
func ValidateProductID(productID string) error {
	if productID == "" {
		return fmt.Errorf("product id cannot be empty")
	}
	return nil
}
