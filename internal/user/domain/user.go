// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/theclub/api/internal/errors"
)

// User represents an account in the publication platform.
// Email is the unique addressing key used as the credential subject;
// Password always holds the hashed secret, never the plain form.
type User struct {
	ID        int64
	Name      string
	Email     string
	Password  string
	Role      Role
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist or is not
	// visible to the caller (lookups for authentication resolve disabled
	// accounts as not found).
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")
)
