package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andressep95/session-service/internal/repository/memory"
)

func newTestAuthService(duration time.Duration) *AuthService {
	userRepo := memory.NewUserRepository()
	sessionRepo := memory.NewSessionRepository()

	return NewAuthService(
		userRepo,
		NewCredentialService(userRepo),
		NewSessionService(sessionRepo, duration),
		NewResetService(userRepo),
	)
}

func TestRegister(t *testing.T) {
	auth := newTestAuthService(0)
	ctx := context.Background()

	user, err := auth.Register(ctx, "a@x.com", "pw1secret")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "pw1secret", user.PasswordHash)

	// Same email again is a distinguishable conflict, not a denial
	_, err = auth.Register(ctx, "a@x.com", "otherpassword")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginSessionLifecycle(t *testing.T) {
	auth := newTestAuthService(0)
	ctx := context.Background()

	user, err := auth.Register(ctx, "a@x.com", "pw1secret")
	require.NoError(t, err)

	assert.True(t, auth.ValidateLogin(ctx, "a@x.com", "pw1secret"))
	assert.False(t, auth.ValidateLogin(ctx, "a@x.com", "wrong"))
	assert.False(t, auth.ValidateLogin(ctx, "nobody@x.com", "pw1secret"))

	sessionID, err := auth.CreateSession(ctx, user.ID)
	require.NoError(t, err)

	resolved, err := auth.ResolveUserFromSession(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, "a@x.com", resolved.Email)

	existed, err := auth.DestroySession(ctx, sessionID)
	require.NoError(t, err)
	assert.True(t, existed)

	_, err = auth.ResolveUserFromSession(ctx, sessionID)
	assert.ErrorIs(t, err, ErrInvalidSession)

	existed, err = auth.DestroySession(ctx, sessionID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func TestConcurrentSessionsPerUser(t *testing.T) {
	auth := newTestAuthService(0)
	ctx := context.Background()

	user, err := auth.Register(ctx, "a@x.com", "pw1secret")
	require.NoError(t, err)

	first, err := auth.CreateSession(ctx, user.ID)
	require.NoError(t, err)
	second, err := auth.CreateSession(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// Destroying one session leaves the other intact
	_, err = auth.DestroySession(ctx, first)
	require.NoError(t, err)

	resolved, err := auth.ResolveUserFromSession(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestPasswordResetFlow(t *testing.T) {
	auth := newTestAuthService(0)
	ctx := context.Background()

	_, err := auth.Register(ctx, "a@x.com", "oldpassword")
	require.NoError(t, err)

	_, err = auth.IssueResetToken(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	resetToken, err := auth.IssueResetToken(ctx, "a@x.com")
	require.NoError(t, err)

	require.NoError(t, auth.ConsumePasswordReset(ctx, resetToken, "newpassword"))

	assert.True(t, auth.ValidateLogin(ctx, "a@x.com", "newpassword"))
	assert.False(t, auth.ValidateLogin(ctx, "a@x.com", "oldpassword"))

	// The token was consumed
	err = auth.ConsumePasswordReset(ctx, resetToken, "thirdpassword")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
