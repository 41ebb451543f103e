package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/repository"
	"github.com/andressep95/session-service/pkg/token"
)

var (
	// ErrInvalidSession covers unknown, expired and destroyed sessions
	// alike; resolution never distinguishes them.
	ErrInvalidSession = errors.New("invalid session")
	ErrNoUserID       = errors.New("user id is required")
)

// SessionService manages the session lifecycle: issuance, expiration-aware
// resolution and destruction. Persistence and expiration are independent
// axes: any SessionRepository can be combined with any duration.
type SessionService struct {
	sessions repository.SessionRepository
	duration time.Duration // 0 means sessions never expire
	now      func() time.Time
}

// NewSessionService creates a session service. A duration of 0 disables
// time-based expiration.
func NewSessionService(sessions repository.SessionRepository, duration time.Duration) *SessionService {
	return &SessionService{
		sessions: sessions,
		duration: duration,
		now:      time.Now,
	}
}

// CreateSession allocates a fresh unguessable session identifier for
// the user and records it. A destroyed or expired session is never
// reused; every call mints a new identifier.
func (s *SessionService) CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	if userID == uuid.Nil {
		return "", ErrNoUserID
	}

	sessionID, err := token.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}

	session := &domain.Session{
		ID:        sessionID,
		UserID:    userID,
		CreatedAt: s.now(),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return sessionID, nil
}

// ResolveUser returns the owning user id for a session identifier.
// Expiration is lazy: an expired session is denied here even though the
// stored record may still exist.
func (s *SessionService) ResolveUser(ctx context.Context, sessionID string) (uuid.UUID, error) {
	if sessionID == "" {
		return uuid.Nil, ErrInvalidSession
	}

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return uuid.Nil, ErrInvalidSession
	}

	if s.duration > 0 && s.now().After(session.CreatedAt.Add(s.duration)) {
		return uuid.Nil, ErrInvalidSession
	}

	return session.UserID, nil
}

// DestroySession revokes a session unconditionally, independent of
// expiration. It reports whether a record existed and is idempotent.
func (s *SessionService) DestroySession(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	return s.sessions.Delete(ctx, sessionID)
}
