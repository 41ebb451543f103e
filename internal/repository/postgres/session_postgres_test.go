package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestSessionCreateAndGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	createdAt := time.Now()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs("tok-1", userID, createdAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(ctx, &domain.Session{ID: "tok-1", UserID: userID, CreatedAt: createdAt})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"session_id", "user_id", "created_at"}).
		AddRow("tok-1", userID, createdAt)
	mock.ExpectQuery("SELECT session_id, user_id, created_at").
		WithArgs("tok-1").
		WillReturnRows(rows)

	session, err := repo.GetByID(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)

	mock.ExpectQuery("SELECT session_id, user_id, created_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"session_id", "user_id", "created_at"}))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionDeleteIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	existed, err := repo.Delete(ctx, "tok-1")
	require.NoError(t, err)
	assert.True(t, existed)

	// Absent session: zero rows affected is reported, not an error
	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("tok-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	existed, err = repo.Delete(ctx, "tok-1")
	require.NoError(t, err)
	assert.False(t, existed)

	assert.NoError(t, mock.ExpectationsWereMet())
}
