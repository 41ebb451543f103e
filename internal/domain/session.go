package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is one authenticated session. ID is the opaque token handed
// to the client; a user may hold any number of concurrent sessions.
type Session struct {
	ID        string    `json:"session_id" db:"session_id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
