package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrProductNotFound indicates that catalog product was not found
	ErrProductNotFound = errors.New("product not found")

	// ErrAlertNotFound indicates that price alert was not found
	ErrAlertNotFound = errors.New("price alert not found")
)
