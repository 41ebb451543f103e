package repository

import "errors"

// ErrNotFound is returned by lookups when no record matches. Callers
// that must not leak existence information translate it into a uniform
// denial at the service boundary.
var ErrNotFound = errors.New("record not found")
