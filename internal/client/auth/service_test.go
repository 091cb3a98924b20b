package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpclient "github.com/iudanet/shopsync/internal/client/api"
	"github.com/iudanet/shopsync/internal/client/storage"
	"github.com/iudanet/shopsync/internal/crypto"
	"github.com/iudanet/shopsync/pkg/api"
)

// memSessions реализует SessionStorage в памяти
type memSessions struct {
	session *storage.Session
}

func (m *memSessions) SaveSession(ctx context.Context, session *storage.Session) error {
	m.session = session
	return nil
}

func (m *memSessions) GetSession(ctx context.Context) (*storage.Session, error) {
	if m.session == nil {
		return nil, storage.ErrSessionNotFound
	}
	return m.session, nil
}

func (m *memSessions) DeleteSession(ctx context.Context) error {
	if m.session == nil {
		return storage.ErrSessionNotFound
	}
	m.session = nil
	return nil
}

func newTestService(apiClient httpclient.ClientAPI) (*Service, *memSessions) {
	sessions := &memSessions{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(apiClient, sessions, logger), sessions
}

func TestRegister(t *testing.T) {
	var gotReq api.RegisterRequest
	mockAPI := &httpclient.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			gotReq = req
			return &api.RegisterResponse{UserID: "user-1", Message: "registered"}, nil
		},
	}
	svc, _ := newTestService(mockAPI)

	result, err := svc.Register(context.Background(), "alice", "password123")
	require.NoError(t, err)

	assert.Equal(t, "user-1", result.UserID)
	assert.Equal(t, "alice", result.Username)
	assert.NotEmpty(t, result.PublicSalt)

	// На сервер ушел хеш производного ключа, не пароль
	assert.Equal(t, "alice", gotReq.Username)
	assert.Len(t, gotReq.AuthKeyHash, 64)
	assert.NotContains(t, gotReq.AuthKeyHash, "password123")
	assert.Equal(t, result.PublicSalt, gotReq.PublicSalt)
}

func TestRegister_Validation(t *testing.T) {
	mockAPI := &httpclient.ClientAPIMock{}
	svc, _ := newTestService(mockAPI)

	_, err := svc.Register(context.Background(), "a", "password123")
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), "alice", "short")
	assert.Error(t, err)

	// До API дело не дошло
	assert.Empty(t, mockAPI.RegisterCalls())
}

func TestLogin(t *testing.T) {
	salt, err := crypto.GenerateSaltBase64()
	require.NoError(t, err)

	var gotLogin api.LoginRequest
	mockAPI := &httpclient.ClientAPIMock{
		GetSaltFunc: func(ctx context.Context, username string) (*api.SaltResponse, error) {
			return &api.SaltResponse{PublicSalt: salt}, nil
		},
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			gotLogin = req
			return &api.TokenResponse{
				AccessToken: "jwt-token",
				UserID:      "user-1",
				ExpiresIn:   3600,
			}, nil
		},
	}
	svc, sessions := newTestService(mockAPI)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	session, err := svc.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)

	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, "alice", session.Username)
	assert.Equal(t, "jwt-token", session.AccessToken)
	assert.True(t, session.ExpiresAt.Equal(now.Add(time.Hour)))

	// Сессия сохранена на устройстве
	require.NotNil(t, sessions.session)
	assert.Equal(t, "jwt-token", sessions.session.AccessToken)

	// Хеш детерминирован относительно пароля, username и соли
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt("password123", "alice", salt)
	require.NoError(t, err)
	wantHash, err := crypto.HashAuthKey(authKey)
	require.NoError(t, err)
	assert.Equal(t, wantHash, gotLogin.AuthKeyHash)
}

func TestLogin_SaltFetchError(t *testing.T) {
	mockAPI := &httpclient.ClientAPIMock{
		GetSaltFunc: func(ctx context.Context, username string) (*api.SaltResponse, error) {
			return nil, errors.New("user not found")
		},
	}
	svc, _ := newTestService(mockAPI)

	_, err := svc.Login(context.Background(), "alice", "password123")
	assert.ErrorContains(t, err, "failed to get salt")
}

func TestLogout(t *testing.T) {
	svc, sessions := newTestService(&httpclient.ClientAPIMock{})
	sessions.session = &storage.Session{UserID: "user-1", AccessToken: "token"}

	require.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, sessions.session)

	// Повторный logout без сессии
	assert.ErrorIs(t, svc.Logout(context.Background()), ErrNotAuthenticated)
}

func TestCurrentSession(t *testing.T) {
	svc, sessions := newTestService(&httpclient.ClientAPIMock{})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	// Нет сессии
	_, err := svc.CurrentSession(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	// Валидная сессия
	sessions.session = &storage.Session{
		UserID:      "user-1",
		AccessToken: "token",
		ExpiresAt:   now.Add(time.Hour),
	}
	session, err := svc.CurrentSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)

	// Истекшая сессия
	sessions.session.ExpiresAt = now.Add(-time.Minute)
	_, err = svc.CurrentSession(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}
