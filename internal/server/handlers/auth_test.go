package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/internal/server/storage"
	"github.com/iudanet/shopsync/pkg/api"
)

// mockUserStorage is a map-backed UserStorage implementation for testing
type mockUserStorage struct {
	users        map[string]*models.User // username -> User
	createError  error
	getUserError error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(data)
}

func TestAuthHandler_Register(t *testing.T) {
	userStorage := newMockUserStorage()
	h := NewAuthHandler(discardLogger(), userStorage, testJWTConfig())

	req := api.RegisterRequest{
		Username:    "newuser",
		AuthKeyHash: "a1b2c3d4",
		PublicSalt:  "c2FsdA==",
	}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, req))
	w := httptest.NewRecorder()
	h.Register(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.RegisterResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.UserID)

	stored, ok := userStorage.users["newuser"]
	require.True(t, ok)
	assert.Equal(t, "a1b2c3d4", stored.AuthKeyHash)
	assert.Equal(t, "c2FsdA==", stored.PublicSalt)
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		req      api.RegisterRequest
		wantCode int
	}{
		{
			name:     "short username",
			req:      api.RegisterRequest{Username: "ab", AuthKeyHash: "h", PublicSalt: "s"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing auth key hash",
			req:      api.RegisterRequest{Username: "validuser", PublicSalt: "s"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing salt",
			req:      api.RegisterRequest{Username: "validuser", AuthKeyHash: "h"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(discardLogger(), newMockUserStorage(), testJWTConfig())

			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, tt.req))
			w := httptest.NewRecorder()
			h.Register(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestAuthHandler_RegisterDuplicate(t *testing.T) {
	userStorage := newMockUserStorage()
	userStorage.users["taken"] = &models.User{ID: "u1", Username: "taken"}
	h := NewAuthHandler(discardLogger(), userStorage, testJWTConfig())

	req := api.RegisterRequest{Username: "taken", AuthKeyHash: "h", PublicSalt: "s"}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", jsonBody(t, req))
	w := httptest.NewRecorder()
	h.Register(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_GetSalt(t *testing.T) {
	userStorage := newMockUserStorage()
	userStorage.users["saltuser"] = &models.User{
		ID:         "u1",
		Username:   "saltuser",
		PublicSalt: "cHVibGljLXNhbHQ=",
	}
	h := NewAuthHandler(discardLogger(), userStorage, testJWTConfig())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/salt/saltuser", nil)
	r.SetPathValue("username", "saltuser")
	w := httptest.NewRecorder()
	h.GetSalt(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.SaltResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "cHVibGljLXNhbHQ=", resp.PublicSalt)
}

func TestAuthHandler_GetSaltNotFound(t *testing.T) {
	h := NewAuthHandler(discardLogger(), newMockUserStorage(), testJWTConfig())

	r := httptest.NewRequest(http.MethodGet, "/api/v1/auth/salt/nobody", nil)
	r.SetPathValue("username", "nobody")
	w := httptest.NewRecorder()
	h.GetSalt(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	userStorage := newMockUserStorage()
	userStorage.users["loginuser"] = &models.User{
		ID:          "user-42",
		Username:    "loginuser",
		AuthKeyHash: "deadbeef",
	}
	cfg := testJWTConfig()
	h := NewAuthHandler(discardLogger(), userStorage, cfg)

	req := api.LoginRequest{Username: "loginuser", AuthKeyHash: "deadbeef"}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, req))
	w := httptest.NewRecorder()
	h.Login(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.TokenResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "user-42", resp.UserID)
	assert.Equal(t, int64(cfg.AccessTokenTTL.Seconds()), resp.ExpiresIn)

	// Выданный токен должен проходить валидацию
	claims, err := ValidateAccessToken(cfg, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "loginuser", claims.Username)
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	userStorage := newMockUserStorage()
	userStorage.users["loginuser"] = &models.User{
		ID:          "user-42",
		Username:    "loginuser",
		AuthKeyHash: "deadbeef",
	}
	h := NewAuthHandler(discardLogger(), userStorage, testJWTConfig())

	tests := []struct {
		name string
		req  api.LoginRequest
	}{
		{name: "wrong hash", req: api.LoginRequest{Username: "loginuser", AuthKeyHash: "wrong"}},
		{name: "unknown user", req: api.LoginRequest{Username: "ghostuser", AuthKeyHash: "deadbeef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, tt.req))
			w := httptest.NewRecorder()
			h.Login(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthHandler_LoginStorageError(t *testing.T) {
	userStorage := newMockUserStorage()
	userStorage.getUserError = errors.New("db down")
	h := NewAuthHandler(discardLogger(), userStorage, testJWTConfig())

	req := api.LoginRequest{Username: "loginuser", AuthKeyHash: "deadbeef"}

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", jsonBody(t, req))
	w := httptest.NewRecorder()
	h.Login(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
