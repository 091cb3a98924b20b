package storage

import (
	"context"
	"time"
)

// Session представляет сохраненную сессию пользователя на устройстве
type Session struct {
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	AccessToken string    `json:"access_token"`
}

// Valid сообщает, не истек ли access token сессии
func (s Session) Valid(now time.Time) bool {
	return s.AccessToken != "" && now.Before(s.ExpiresAt)
}

// SessionStorage defines interface for storing the device session
type SessionStorage interface {
	// SaveSession stores or overwrites the current session
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the current session
	// Returns ErrSessionNotFound if no session is saved
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the saved session (logout)
	DeleteSession(ctx context.Context) error
}
