package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/trackkeeper/internal/validation"
	pkgapi "github.com/iudanet/trackkeeper/pkg/api"
)

//go:generate moq -out client_mock.go . Client

// Client is the part of the HTTP API client used for authentication.
type Client interface {
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.RegisterResponse, error)
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	SetToken(token string)
}

// Service предоставляет функции авторизации и хранения сессии
type Service struct {
	client   Client
	sessions *SessionStore
	logger   *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(client Client, sessions *SessionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, sessions: sessions, logger: logger}
}

// Register регистрирует нового пользователя и возвращает его ID
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	// Валидация входных данных
	if err := validation.ValidateUsername(username); err != nil {
		return "", err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return "", err
	}

	resp, err := s.client.Register(ctx, pkgapi.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("registration failed: %w", err)
	}

	s.logger.Info("User registered", "username", username, "user_id", resp.UserID)
	return resp.UserID, nil
}

// Login выполняет аутентификацию, сохраняет сессию и устанавливает токен в клиенте
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password cannot be empty", validation.ErrInvalidPassword)
	}

	resp, err := s.client.Login(ctx, pkgapi.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	session := &Session{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
	}
	if resp.ExpiresIn > 0 {
		session.ExpiresAt = s.sessions.now().Add(time.Duration(resp.ExpiresIn) * time.Second).UTC()
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		// Сессия живет только в памяти этого процесса
		s.logger.Warn("Session was not persisted", "error", err)
	}
	s.client.SetToken(session.AccessToken)

	s.logger.Info("User logged in", "username", username, "user_id", session.UserID)
	return session, nil
}

// Restore загружает сохраненную сессию и устанавливает токен в клиенте
func (s *Service) Restore(ctx context.Context) (*Session, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	s.client.SetToken(session.AccessToken)
	return session, nil
}

// Logout удаляет локальную сессию
func (s *Service) Logout(ctx context.Context) {
	s.sessions.Delete(ctx)
	s.client.SetToken("")
	s.logger.Info("User logged out")
}
