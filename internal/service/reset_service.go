package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/andressep95/session-service/internal/repository"
	"github.com/andressep95/session-service/pkg/hash"
	"github.com/andressep95/session-service/pkg/token"
)

var ErrInvalidResetToken = errors.New("invalid reset token")

// ResetService issues single-use password reset tokens and applies the
// password change that consumes them.
type ResetService struct {
	userRepo repository.UserRepository
}

func NewResetService(userRepo repository.UserRepository) *ResetService {
	return &ResetService{
		userRepo: userRepo,
	}
}

// IssueToken generates a fresh reset token for the user registered
// under email. A previously issued token is overwritten and thereby
// invalidated; at most one token is active per user.
func (s *ResetService) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	resetToken, err := token.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}

	if err := s.userRepo.SetResetToken(ctx, user.ID, resetToken); err != nil {
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	log.Printf("[RESET_SERVICE] Reset token issued for user %s", user.ID)
	return resetToken, nil
}

// ConsumeToken updates the password of the user holding the token and
// clears the token, enforcing single use. The hash write and the token
// clear are one atomic repository operation; on any failure the prior
// password and token remain untouched.
func (s *ResetService) ConsumeToken(ctx context.Context, resetToken, newPassword string) error {
	if resetToken == "" {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.GetByResetToken(ctx, resetToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	passwordHash, err := hash.Password(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	log.Printf("[RESET_SERVICE] Password updated for user %s", user.ID)
	return nil
}
