// Package auth реализует регистрацию, логин и управление сессией
// устройства. Пароль пользователя не хранится и не отправляется:
// на сервер уходит только SHA256 хеш производного Argon2id ключа.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpclient "github.com/iudanet/shopsync/internal/client/api"
	"github.com/iudanet/shopsync/internal/client/storage"
	"github.com/iudanet/shopsync/internal/crypto"
	"github.com/iudanet/shopsync/internal/validation"
	"github.com/iudanet/shopsync/pkg/api"
)

// ErrNotAuthenticated возвращается, когда на устройстве нет валидной сессии
var ErrNotAuthenticated = errors.New("not authenticated")

// Service предоставляет функции авторизации и хранит сессию устройства
type Service struct {
	apiClient httpclient.ClientAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient httpclient.ClientAPI, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID     string // UUID пользователя
	Username   string
	PublicSalt string // public salt (base64)
}

// Register регистрирует нового пользователя.
// Генерирует public salt, деривирует auth key и отправляет серверу
// только его хеш. После регистрации нужен отдельный Login.
func (s *Service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	// Генерируем публичную соль
	publicSalt, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	// Деривируем auth key и хешируем его для отправки
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, username, publicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}
	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  publicSalt,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	s.logger.InfoContext(ctx, "User registered", "username", username, "user_id", resp.UserID)

	return &RegisterResult{
		UserID:     resp.UserID,
		Username:   username,
		PublicSalt: publicSalt,
	}, nil
}

// Login выполняет аутентификацию и сохраняет сессию устройства:
// получает public salt с сервера, деривирует auth key и обменивает
// его хеш на access token.
func (s *Service) Login(ctx context.Context, username, password string) (*storage.Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	saltResp, err := s.apiClient.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(password, username, saltResp.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}
	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &storage.Session{
		UserID:      resp.UserID,
		Username:    username,
		AccessToken: resp.AccessToken,
		ExpiresAt:   s.now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.InfoContext(ctx, "User logged in", "username", username, "user_id", resp.UserID)

	return session, nil
}

// Logout удаляет сессию устройства. Кэш доменов не трогается:
// его чистит forceFullSync при следующем логине, если нужно.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	s.logger.InfoContext(ctx, "User logged out")
	return nil
}

// CurrentSession возвращает валидную сессию устройства.
// ErrNotAuthenticated - если сессии нет или access token истек.
func (s *Service) CurrentSession(ctx context.Context) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if !session.Valid(s.now()) {
		return nil, ErrNotAuthenticated
	}
	return session, nil
}
