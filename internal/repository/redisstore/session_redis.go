package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/repository"
)

const keyPrefix = "session:"

type sessionRepository struct {
	redis *redis.Client
}

// NewSessionRepository creates a Redis-backed session repository.
// Records are keyed by session identifier, so sessions survive process
// restarts and lookups stay O(1). Expiration is not delegated to Redis
// TTLs; the session service decides validity at resolution time.
func NewSessionRepository(redisClient *redis.Client) repository.SessionRepository {
	return &sessionRepository{redis: redisClient}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = r.redis.Set(ctx, keyPrefix+session.ID, payload, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	payload, err := r.redis.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.redis.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}

	return deleted > 0, nil
}
