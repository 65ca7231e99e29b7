package domain

import (
	"github.com/theclub/api/internal/errors"
)

// Role is the closed set of account roles in the publication platform.
// Every account carries exactly one role, and access decisions are expressed
// as set membership over this enumeration, never as raw string comparison.
type Role string

const (
	// RoleAdmin has full access to the system.
	RoleAdmin Role = "ADMIN"

	// RoleEditor reviews and publishes content.
	RoleEditor Role = "EDITOR"

	// RoleWriter creates content.
	RoleWriter Role = "WRITER"

	// RoleReader is the default role for self-registered accounts.
	RoleReader Role = "READER"
)

// ErrInvalidRole indicates a role string outside the closed enumeration.
var ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleEditor, RoleWriter, RoleReader}
}

// ParseRole converts a string into a Role. Returns ErrInvalidRole for any
// value outside the enumeration.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Valid reports whether the role is a member of the closed enumeration.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleWriter, RoleReader:
		return true
	}
	return false
}

// Authority returns the authority tag for the role (e.g., "ROLE_ADMIN").
// The tag is a display/claim rendering only; access checks use In.
func (r Role) Authority() string {
	return "ROLE_" + string(r)
}

// In reports whether the role is a member of the given set.
func (r Role) In(set ...Role) bool {
	for _, candidate := range set {
		if r == candidate {
			return true
		}
	}
	return false
}
