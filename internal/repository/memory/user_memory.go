package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/repository"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewUserRepository creates an in-memory user repository. Intended for
// tests and local development; constructed and passed in explicitly,
// never process-global.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[uuid.UUID]domain.User),
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*domain.User
	for _, user := range r.users {
		if user.Email == email {
			u := user
			matches = append(matches, &u)
		}
	}

	return matches, nil
}

func (r *userRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ResetToken != nil && *user.ResetToken == token {
			u := user
			return &u, nil
		}
	}

	return nil, repository.ErrNotFound
}

func (r *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	user.ResetToken = &token
	r.users[id] = user
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}

	// Hash write and token clear happen under one lock, matching the
	// single-statement guarantee of the postgres store.
	user.PasswordHash = passwordHash
	user.ResetToken = nil
	r.users[id] = user
	return nil
}
