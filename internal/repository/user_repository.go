package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/andressep95/session-service/internal/domain"
)

// UserRepository is the persistent user store. Mutations are
// enumerated on purpose: there is no generic update-by-field-name,
// only the named operations the auth flows need.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByEmail returns every user matching the email. The credential
	// verifier requires exactly one candidate before checking the
	// password, so the search result is returned unreduced.
	FindByEmail(ctx context.Context, email string) ([]*domain.User, error)
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)
	// SetResetToken replaces the user's active reset token. Any
	// previously issued token is invalidated by the overwrite.
	SetResetToken(ctx context.Context, id uuid.UUID, token string) error
	// UpdatePassword stores the new password hash and clears the reset
	// token in a single atomic write.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
