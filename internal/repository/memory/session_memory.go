package memory

import (
	"context"
	"sync"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/repository"
)

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

// NewSessionRepository creates an in-memory session repository.
func NewSessionRepository() repository.SessionRepository {
	return &sessionRepository{
		sessions: make(map[string]domain.Session),
	}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = *session
	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}

	return ok, nil
}
