package auth

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/trackkeeper/internal/client/storage"
)

var (
	// ErrNotAuthenticated indicates that no valid session is stored
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionNotSaved indicates that the local store rejected the session
	ErrSessionNotSaved = errors.New("failed to save session")
)

// sessionKey ключ единственной записи в коллекции session
const sessionKey = "current"

// Session represents the logged-in user on this client.
type Session struct {
	ExpiresAt   time.Time `json:"expires_at"`
	Username    string    `json:"username"`
	UserID      string    `json:"user_id"`
	AccessToken string    `json:"access_token"`
}

// Expired reports whether the access token has expired at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// SessionStore persists the session in the local store's session collection.
type SessionStore struct {
	store storage.Store
	now   func() time.Time
}

// NewSessionStore creates a SessionStore on top of store.
func NewSessionStore(store storage.Store) *SessionStore {
	return &SessionStore{store: store, now: time.Now}
}

// Save stores the session, replacing any previous one.
func (s *SessionStore) Save(ctx context.Context, session *Session) error {
	rec, err := storage.NewRecord(sessionKey, "", session)
	if err != nil {
		return err
	}
	if !s.store.Put(ctx, storage.CollectionSession, rec) {
		return ErrSessionNotSaved
	}
	return nil
}

// Load returns the stored session or ErrNotAuthenticated when there is none
// or it has expired.
func (s *SessionStore) Load(ctx context.Context) (*Session, error) {
	rec, ok := s.store.Get(ctx, storage.CollectionSession, sessionKey)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	session := &Session{}
	if err := rec.Decode(session); err != nil {
		return nil, err
	}

	// Проверяем, не истек ли токен
	if session.Expired(s.now()) {
		return nil, ErrNotAuthenticated
	}
	return session, nil
}

// Delete removes the stored session. Deleting a missing session succeeds.
func (s *SessionStore) Delete(ctx context.Context) {
	s.store.Delete(ctx, storage.CollectionSession, sessionKey)
}
