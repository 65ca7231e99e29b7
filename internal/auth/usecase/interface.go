// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"

	authDomain "github.com/theclub/api/internal/auth/domain"
	userDomain "github.com/theclub/api/internal/user/domain"
)

// AccountStore defines the account lookup needed by authentication. Only
// active accounts are visible through it; a disabled account behaves exactly
// like a missing one.
type AccountStore interface {
	FindActiveByEmail(ctx context.Context, email string) (*userDomain.User, error)
}

// AuthUseCase defines the authentication operations: primary login, token
// refresh, and per-request token authentication.
type AuthUseCase interface {
	Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error)
	Refresh(ctx context.Context, token string) (*authDomain.LoginOutput, error)
	Authenticate(ctx context.Context, token string) (*authDomain.Principal, error)
}
