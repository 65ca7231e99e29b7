package domain

import (
	"github.com/theclub/api/internal/errors"
)

// Authentication errors.
var (
	// ErrInvalidCredentials covers every primary-authentication failure:
	// unknown identity, wrong secret, disabled account, or a token whose
	// subject does not resolve. Deliberately generic to prevent account
	// enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrTokenMalformed indicates a token that cannot be parsed or whose
	// signature does not verify (tampering or wrong signing secret).
	ErrTokenMalformed = errors.New("token malformed or signature invalid")

	// ErrTokenExpired indicates a well-formed, correctly signed token whose
	// expiry instant has passed. Callers surface this as "please
	// re-authenticate".
	ErrTokenExpired = errors.New("token expired")
)
