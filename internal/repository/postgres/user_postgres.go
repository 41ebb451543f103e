package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (
			id, email, password_hash, reset_token, created_at, updated_at
		) VALUES (
			:id, :email, :password_hash, :reset_token, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, reset_token, created_at, updated_at
		FROM users
		WHERE id = $1`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by their email address
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, reset_token, created_at, updated_at
		FROM users
		WHERE email = $1`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// FindByEmail retrieves all users matching the email address
func (r *userRepository) FindByEmail(ctx context.Context, email string) ([]*domain.User, error) {
	query := `
		SELECT id, email, password_hash, reset_token, created_at, updated_at
		FROM users
		WHERE email = $1`

	var users []*domain.User
	err := r.db.SelectContext(ctx, &users, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find users by email: %w", err)
	}

	return users, nil
}

// GetByResetToken retrieves a user by their active password reset token
func (r *userRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, reset_token, created_at, updated_at
		FROM users
		WHERE reset_token = $1`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, token)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by reset token: %w", err)
	}

	return &user, nil
}

// SetResetToken stores a new reset token, replacing any previous one
func (r *userRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string) error {
	query := `
		UPDATE users
		SET reset_token = $1, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, token, id)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// UpdatePassword stores the new password hash and clears the reset
// token in the same statement, so the two writes cannot be observed
// separately.
func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $1, reset_token = NULL, updated_at = NOW()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
