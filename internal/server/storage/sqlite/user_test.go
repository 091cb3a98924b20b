package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/shopsync/internal/models"
	"github.com/iudanet/shopsync/internal/server/storage"
)

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := &models.User{
		ID:          uuid.New().String(),
		Username:    "testuser",
		AuthKeyHash: "a1b2c3",
		PublicSalt:  "c2FsdA==",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.AuthKeyHash, got.AuthKeyHash)
	assert.Equal(t, user.PublicSalt, got.PublicSalt)
	assert.Equal(t, user.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestUserStorage_CreateUserDuplicate(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	first := &models.User{
		ID:          uuid.New().String(),
		Username:    "dupuser",
		AuthKeyHash: "hash1",
		PublicSalt:  "salt1",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateUser(ctx, first))

	second := &models.User{
		ID:          uuid.New().String(),
		Username:    "dupuser",
		AuthKeyHash: "hash2",
		PublicSalt:  "salt2",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	err := s.CreateUser(ctx, second)
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByID(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	userID := createTestUser(t, s, "iduser")

	got, err := s.GetUserByID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "iduser", got.Username)
}

func TestUserStorage_GetUserNotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
