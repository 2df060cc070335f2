package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/trackkeeper/internal/models"
	"github.com/iudanet/trackkeeper/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret-0123456789"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

// newUserStorage возвращает мок UserStorage поверх map username -> User
func newUserStorage() (*storage.UserStorageMock, map[string]*models.User) {
	var mu sync.Mutex
	users := make(map[string]*models.User)
	mock := &storage.UserStorageMock{
		CreateUserFunc: func(ctx context.Context, user *models.User) error {
			mu.Lock()
			defer mu.Unlock()
			if _, exists := users[user.Username]; exists {
				return storage.ErrUserAlreadyExists
			}
			users[user.Username] = user
			return nil
		},
		GetUserByUsernameFunc: func(ctx context.Context, username string) (*models.User, error) {
			mu.Lock()
			defer mu.Unlock()
			user, ok := users[username]
			if !ok {
				return nil, storage.ErrUserNotFound
			}
			return user, nil
		},
		GetUserByIDFunc: func(ctx context.Context, userID string) (*models.User, error) {
			mu.Lock()
			defer mu.Unlock()
			for _, user := range users {
				if user.ID == userID {
					return user, nil
				}
			}
			return nil, storage.ErrUserNotFound
		},
		UpdateLastLoginFunc: func(ctx context.Context, userID string, lastLogin time.Time) error {
			return nil
		},
	}
	return mock, users
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}
