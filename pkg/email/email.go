package email

import (
	"context"
)

// Service sends account-security notifications.
type Service interface {
	// SendPasswordResetEmail delivers a single-use reset token to the user
	SendPasswordResetEmail(ctx context.Context, to, token string) error

	// SendPasswordChangedEmail notifies the user after a successful password change
	SendPasswordChangedEmail(ctx context.Context, to string) error
}

// Config holds email delivery configuration
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
	ResetURL  string // page that accepts ?token=, linked from the reset email
}
