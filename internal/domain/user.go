package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record. PasswordHash always holds the argon2id
// encoding, never the plaintext. ResetToken is nil unless a password
// reset is pending; at most one token is active at a time.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	ResetToken   *string   `json:"-" db:"reset_token"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
