package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/repository"
	"github.com/andressep95/session-service/pkg/hash"
)

// ErrInvalidCredentials is the uniform denial for every credential
// failure: malformed header, unknown email, ambiguous email, wrong
// password. Callers never learn which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

const basicScheme = "Basic "

// CredentialService resolves presented credentials to a user. It is
// read-only against the user store.
type CredentialService struct {
	userRepo repository.UserRepository
}

func NewCredentialService(userRepo repository.UserRepository) *CredentialService {
	return &CredentialService{
		userRepo: userRepo,
	}
}

// VerifyHeader resolves a Basic authorization header value to a user.
func (s *CredentialService) VerifyHeader(ctx context.Context, authHeader string) (*domain.User, error) {
	email, password, ok := decodeBasicHeader(authHeader)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return s.Verify(ctx, email, password)
}

// Verify resolves an email/password pair to a user.
func (s *CredentialService) Verify(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	users, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Exactly one candidate, or nothing. Two users sharing an email is
	// a store inconsistency and must not authenticate either of them.
	if len(users) != 1 {
		return nil, ErrInvalidCredentials
	}

	user := users[0]

	valid, err := hash.Verify(password, user.PasswordHash)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// decodeBasicHeader extracts the email/password pair from a Basic
// authorization header value. Any malformation yields ok == false.
func decodeBasicHeader(authHeader string) (email, password string, ok bool) {
	if !strings.HasPrefix(authHeader, basicScheme) {
		return "", "", false
	}

	payload, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, basicScheme))
	if err != nil {
		return "", "", false
	}

	// Split on the first ':' only; the password itself may contain one.
	parts := strings.SplitN(string(payload), ":", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	return parts[0], parts[1], true
}
