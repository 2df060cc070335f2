package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}
	return s, cleanup
}

func createTestUser(t *testing.T, s *Storage, username string) string {
	t.Helper()

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user.ID
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		user *models.User
		name string
	}{
		{
			name: "create new user successfully",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "testuser1",
				PasswordHash: "hash123",
				CreatedAt:    time.Now(),
			},
		},
		{
			name: "create user with last login",
			user: &models.User{
				ID:           uuid.New().String(),
				Username:     "testuser2",
				PasswordHash: "hash456",
				CreatedAt:    time.Now(),
				LastLogin:    timePtr(time.Now()),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.CreateUser(ctx, tt.user))

			retrieved, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.user.Username, retrieved.Username)
			assert.Equal(t, tt.user.PasswordHash, retrieved.PasswordHash)
			assert.Equal(t, tt.user.LastLogin != nil, retrieved.LastLogin != nil)
		})
	}
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	createTestUser(t, s, "duplicate")

	err := s.CreateUser(ctx, &models.User{
		ID:           uuid.New().String(),
		Username:     "duplicate",
		PasswordHash: "other",
		CreatedAt:    time.Now(),
	})
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id := createTestUser(t, s, "alice")

	user, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Nil(t, user.LastLogin)

	_, err = s.GetUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	id := createTestUser(t, s, "alice")
	loginAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	require.NoError(t, s.UpdateLastLogin(ctx, id, loginAt))

	user, err := s.GetUserByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.True(t, loginAt.Equal(*user.LastLogin))

	assert.ErrorIs(t, s.UpdateLastLogin(ctx, "missing", loginAt), storage.ErrUserNotFound)
}
