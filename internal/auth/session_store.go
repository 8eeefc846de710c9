package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clubhub/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the server-side session registry. A token
// whose session ID is absent from the registry is treated as logged out,
// regardless of its signature.
type SessionStoreInterface interface {
	StoreSession(ctx context.Context, sessionID string, sess *Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionStore keeps active sessions in Redis.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a session store backed by the given cache client.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// StoreSession registers an established session under its session ID.
func (s *SessionStore) StoreSession(ctx context.Context, sessionID string, sess *Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

// GetSession retrieves an active session, or an error if it was revoked or
// never existed.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil || data == nil {
		return nil, fmt.Errorf("session not found")
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// DeleteSession revokes a session. Deleting an unknown session is not an
// error; logout is unconditional.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
