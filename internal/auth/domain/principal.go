// Package domain defines the authentication domain models: the request
// principal and the inputs/outputs of the login and refresh operations.
package domain

import (
	userDomain "github.com/theclub/api/internal/user/domain"
)

// Principal is the authenticated-identity view over a stored account for the
// duration of a single request. It is constructed fresh from a just-loaded
// account by the authentication middleware and discarded at request end; it is
// never cached across requests.
type Principal struct {
	user *userDomain.User
}

// NewPrincipal adapts a loaded account into a request principal.
// The caller is responsible for passing a non-nil, already-loaded user.
func NewPrincipal(user *userDomain.User) *Principal {
	return &Principal{user: user}
}

// ID returns the numeric account id.
func (p *Principal) ID() int64 {
	return p.user.ID
}

// Identity returns the unique identity string (the account email).
func (p *Principal) Identity() string {
	return p.user.Email
}

// DisplayName returns the account display name.
func (p *Principal) DisplayName() string {
	return p.user.Name
}

// PasswordHash returns the stored secret hash. It is consulted only during
// primary login, never during token verification.
func (p *Principal) PasswordHash() string {
	return p.user.Password
}

// Role returns the account role.
func (p *Principal) Role() userDomain.Role {
	return p.user.Role
}

// Authority returns the authority tag for the account role (e.g., "ROLE_EDITOR").
func (p *Principal) Authority() string {
	return p.user.Role.Authority()
}

// Enabled reports whether the account is active.
func (p *Principal) Enabled() bool {
	return p.user.Active
}

// AccountNonLocked reports whether the account is not locked. Locking is not
// tracked separately from the active flag, so this mirrors Enabled.
func (p *Principal) AccountNonLocked() bool {
	return p.user.Active
}
