package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/repository"
	"github.com/andressep95/session-service/pkg/hash"
)

// Custom errors
var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUserNotFound = errors.New("user not found")
)

// AuthService is the single entry point the HTTP layer talks to. It
// composes the credential verifier, the session service and the reset
// service and holds no state of its own.
type AuthService struct {
	userRepo    repository.UserRepository
	credentials *CredentialService
	sessions    *SessionService
	resets      *ResetService
}

func NewAuthService(
	userRepo repository.UserRepository,
	credentials *CredentialService,
	sessions *SessionService,
	resets *ResetService,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		credentials: credentials,
		sessions:    sessions,
		resets:      resets,
	}
}

// Register creates a new user with a hashed password. Registering an
// already-used email fails with ErrEmailTaken; this is the one denial
// the caller is allowed to distinguish, so the HTTP layer can report a
// 400-class conflict.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	passwordHash, err := hash.Password(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[AUTH_SERVICE] User registered: %s", user.ID)
	return user, nil
}

// ValidateLogin reports whether the email/password pair identifies a
// registered user. Every failure mode collapses to false.
func (s *AuthService) ValidateLogin(ctx context.Context, email, password string) bool {
	_, err := s.credentials.Verify(ctx, email, password)
	return err == nil
}

// VerifyCredentials resolves an email/password pair to a user.
func (s *AuthService) VerifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	return s.credentials.Verify(ctx, email, password)
}

// VerifyBasicHeader resolves a Basic authorization header to a user.
func (s *AuthService) VerifyBasicHeader(ctx context.Context, authHeader string) (*domain.User, error) {
	return s.credentials.VerifyHeader(ctx, authHeader)
}

// CreateSession opens a new session for the user and returns its token.
func (s *AuthService) CreateSession(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.sessions.CreateSession(ctx, userID)
}

// ResolveUserFromSession returns the user owning a session token, or a
// uniform denial when the token is unknown, expired or destroyed.
func (s *AuthService) ResolveUserFromSession(ctx context.Context, sessionID string) (*domain.User, error) {
	userID, err := s.sessions.ResolveUser(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}

// DestroySession revokes a session by its token.
func (s *AuthService) DestroySession(ctx context.Context, sessionID string) (bool, error) {
	return s.sessions.DestroySession(ctx, sessionID)
}

// IssueResetToken issues a password reset token for the email's user.
func (s *AuthService) IssueResetToken(ctx context.Context, email string) (string, error) {
	return s.resets.IssueToken(ctx, email)
}

// ConsumePasswordReset applies a password change authorized by a reset
// token, consuming the token.
func (s *AuthService) ConsumePasswordReset(ctx context.Context, resetToken, newPassword string) error {
	return s.resets.ConsumeToken(ctx, resetToken, newPassword)
}
