package email

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"
)

// ResendService implements Service using Resend
type ResendService struct {
	client *resend.Client
	config *Config
}

// NewResendService creates a new Resend email service
func NewResendService(config *Config) (*ResendService, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	if config.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	client := resend.NewClient(config.APIKey)

	return &ResendService{
		client: client,
		config: config,
	}, nil
}

// SendPasswordResetEmail delivers a single-use reset token to the user
func (s *ResendService) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	resetURL := fmt.Sprintf("%s?token=%s", s.config.ResetURL, token)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		To:      []string{to},
		Subject: "Reset Your Password",
		Html:    passwordResetTemplate(resetURL),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[EMAIL] Failed to send password reset email to %s: %v", to, err)
		return fmt.Errorf("failed to send password reset email: %w", err)
	}

	log.Printf("[EMAIL] Password reset email sent to %s (ID: %s)", to, sent.Id)
	return nil
}

// SendPasswordChangedEmail notifies the user after a successful password change
func (s *ResendService) SendPasswordChangedEmail(ctx context.Context, to string) error {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail),
		To:      []string{to},
		Subject: "Your Password Was Changed",
		Html:    passwordChangedTemplate(),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		log.Printf("[EMAIL] Failed to send password changed email to %s: %v", to, err)
		return fmt.Errorf("failed to send password changed email: %w", err)
	}

	log.Printf("[EMAIL] Password changed email sent to %s (ID: %s)", to, sent.Id)
	return nil
}
