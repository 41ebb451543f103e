package email

import (
	"context"
	"log"
)

// NoopService logs instead of sending. Used when email delivery is
// disabled (local development, tests).
type NoopService struct{}

func NewNoopService() *NoopService {
	return &NoopService{}
}

func (s *NoopService) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	log.Printf("[EMAIL] (noop) password reset for %s, token: %s", to, token)
	return nil
}

func (s *NoopService) SendPasswordChangedEmail(ctx context.Context, to string) error {
	log.Printf("[EMAIL] (noop) password changed notification for %s", to)
	return nil
}
