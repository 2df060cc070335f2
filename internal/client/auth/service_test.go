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

	"github.com/iudanet/trackkeeper/internal/client/storage"
	"github.com/iudanet/trackkeeper/internal/client/storage/memory"
	"github.com/iudanet/trackkeeper/internal/validation"
	pkgapi "github.com/iudanet/trackkeeper/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newClientMock() *ClientMock {
	return &ClientMock{
		RegisterFunc: func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			return &pkgapi.RegisterResponse{UserID: "user-1", Message: "ok"}, nil
		},
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{AccessToken: "token-1", UserID: "user-1", ExpiresIn: 3600}, nil
		},
		SetTokenFunc: func(token string) {},
	}
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()
	sessions := NewSessionStore(memory.New())
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	sessions.now = func() time.Time { return now }

	_, err := sessions.Load(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	require.NoError(t, sessions.Save(ctx, &Session{Username: "alice", UserID: "u1", AccessToken: "t", ExpiresAt: now.Add(time.Hour)}))
	got, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	// Истекшая сессия считается отсутствующей
	now = now.Add(2 * time.Hour)
	_, err = sessions.Load(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	sessions.Delete(ctx)
	sessions.Delete(ctx)
	_, err = sessions.Load(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		client := newClientMock()
		svc := NewService(client, NewSessionStore(memory.New()), testLogger())

		userID, err := svc.Register(ctx, "alice", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
		require.Len(t, client.RegisterCalls(), 1)
		assert.Equal(t, "alice", client.RegisterCalls()[0].Req.Username)
	})

	t.Run("Invalid input is rejected locally", func(t *testing.T) {
		client := newClientMock()
		svc := NewService(client, NewSessionStore(memory.New()), testLogger())

		_, err := svc.Register(ctx, "a!", "correct-horse")
		assert.ErrorIs(t, err, validation.ErrInvalidUsername)
		_, err = svc.Register(ctx, "alice", "short")
		assert.ErrorIs(t, err, validation.ErrInvalidPassword)
		assert.Empty(t, client.RegisterCalls())
	})

	t.Run("Server error is wrapped", func(t *testing.T) {
		client := newClientMock()
		serverErr := errors.New("user already exists")
		client.RegisterFunc = func(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error) {
			return nil, serverErr
		}
		svc := NewService(client, NewSessionStore(memory.New()), testLogger())

		_, err := svc.Register(ctx, "alice", "correct-horse")
		assert.ErrorIs(t, err, serverErr)
	})
}

func TestService_LoginRestoreLogout(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	var tokens []string
	client := newClientMock()
	client.SetTokenFunc = func(token string) { tokens = append(tokens, token) }

	svc := NewService(client, NewSessionStore(store), testLogger())

	session, err := svc.Login(ctx, "alice", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "user-1", session.UserID)
	assert.False(t, session.ExpiresAt.IsZero())
	assert.Equal(t, []string{"token-1"}, tokens)
	assert.Len(t, store.GetAll(ctx, storage.CollectionSession, ""), 1)

	// Новый процесс восстанавливает сессию из хранилища
	restoredClient := newClientMock()
	restored, err := NewService(restoredClient, NewSessionStore(store), testLogger()).Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice", restored.Username)
	require.Len(t, restoredClient.SetTokenCalls(), 1)
	assert.Equal(t, "token-1", restoredClient.SetTokenCalls()[0].Token)

	svc.Logout(ctx)
	assert.Equal(t, []string{"token-1", ""}, tokens)
	_, err = svc.Restore(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestService_LoginFailure(t *testing.T) {
	client := newClientMock()
	client.LoginFunc = func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
		return nil, errors.New("invalid credentials")
	}
	svc := NewService(client, NewSessionStore(memory.New()), testLogger())

	_, err := svc.Login(context.Background(), "alice", "wrong-password")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
	assert.Empty(t, client.SetTokenCalls())

	_, err = svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, validation.ErrInvalidPassword)
}
