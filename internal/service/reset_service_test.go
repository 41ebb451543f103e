package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andressep95/session-service/internal/repository/memory"
	"github.com/andressep95/session-service/pkg/hash"
)

func TestIssueTokenUnknownEmail(t *testing.T) {
	svc := NewResetService(memory.NewUserRepository())

	_, err := svc.IssueToken(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestConsumeTokenChangesPasswordOnce(t *testing.T) {
	repo := memory.NewUserRepository()
	user := seedUser(t, repo, "a@x.com", "oldpassword")
	svc := NewResetService(repo)
	ctx := context.Background()

	resetToken, err := svc.IssueToken(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, resetToken)

	require.NoError(t, svc.ConsumeToken(ctx, resetToken, "newpassword"))

	// New password verifies, the old one no longer does
	updated, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)

	ok, err := hash.Verify("newpassword", updated.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hash.Verify("oldpassword", updated.PasswordHash)
	require.NoError(t, err)
	assert.False(t, ok)

	// Token was cleared on success: single use
	assert.Nil(t, updated.ResetToken)
	err = svc.ConsumeToken(ctx, resetToken, "anotherpassword")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestIssueTokenOverwritesPrevious(t *testing.T) {
	repo := memory.NewUserRepository()
	seedUser(t, repo, "a@x.com", "oldpassword")
	svc := NewResetService(repo)
	ctx := context.Background()

	first, err := svc.IssueToken(ctx, "a@x.com")
	require.NoError(t, err)

	second, err := svc.IssueToken(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// The older token was invalidated by the overwrite
	err = svc.ConsumeToken(ctx, first, "newpassword")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	require.NoError(t, svc.ConsumeToken(ctx, second, "newpassword"))
}

func TestConsumeTokenFailureLeavesStateUntouched(t *testing.T) {
	repo := memory.NewUserRepository()
	user := seedUser(t, repo, "a@x.com", "oldpassword")
	svc := NewResetService(repo)
	ctx := context.Background()

	resetToken, err := svc.IssueToken(ctx, "a@x.com")
	require.NoError(t, err)

	err = svc.ConsumeToken(ctx, "wrong-token", "newpassword")
	assert.ErrorIs(t, err, ErrInvalidResetToken)

	// Old password still valid, issued token still active
	current, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)

	ok, err := hash.Verify("oldpassword", current.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NotNil(t, current.ResetToken)
	assert.Equal(t, resetToken, *current.ResetToken)
}

func TestConsumeTokenEmpty(t *testing.T) {
	svc := NewResetService(memory.NewUserRepository())

	err := svc.ConsumeToken(context.Background(), "", "newpassword")
	assert.ErrorIs(t, err, ErrInvalidResetToken)
}
