package repository

import (
	"context"

	"github.com/andressep95/session-service/internal/domain"
)

// SessionRepository is a durable mapping from session identifier to
// session metadata. Implementations must make a session visible to
// GetByID as soon as Create returns for that identifier.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// Delete removes the session and reports whether it existed.
	// Deleting an absent session is not an error.
	Delete(ctx context.Context, id string) (bool, error)
}
