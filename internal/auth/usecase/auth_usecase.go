package usecase

import (
	"context"

	authDomain "github.com/theclub/api/internal/auth/domain"
	authService "github.com/theclub/api/internal/auth/service"
	apperrors "github.com/theclub/api/internal/errors"
	userDomain "github.com/theclub/api/internal/user/domain"
)

// roleClaim is the extra claim carrying the account role inside issued tokens.
const roleClaim = "role"

// authUseCase implements AuthUseCase on top of the account store, the token
// codec, and the secret hashing strategy.
type authUseCase struct {
	accountStore  AccountStore
	tokenService  authService.TokenService
	secretService authService.SecretService
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	accountStore AccountStore,
	tokenService authService.TokenService,
	secretService authService.SecretService,
) AuthUseCase {
	return &authUseCase{
		accountStore:  accountStore,
		tokenService:  tokenService,
		secretService: secretService,
	}
}

// Login authenticates primary credentials and issues a fresh token.
//
// Security notes:
//   - Returns ErrInvalidCredentials for unknown emails, disabled accounts and
//     wrong passwords alike, to prevent account enumeration
//   - The stored hash is only consulted here, never during token verification
func (a *authUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	user, err := a.accountStore.FindActiveByEmail(ctx, input.Email)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.secretService.CompareSecret(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	return a.issueFor(user)
}

// Refresh exchanges a still-valid token for a fresh one with a full TTL. The
// presented token must verify; an expired or malformed token cannot be
// refreshed. The account is re-loaded so that a deactivation since issuance
// cuts the session short.
func (a *authUseCase) Refresh(ctx context.Context, token string) (*authDomain.LoginOutput, error) {
	subject, _, err := a.tokenService.VerifyAndDecode(token)
	if err != nil {
		return nil, err
	}

	user, err := a.accountStore.FindActiveByEmail(ctx, subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	return a.issueFor(user)
}

// Authenticate verifies a bearer token and resolves it to a request
// principal. The account behind the subject is loaded fresh on every call so
// role changes and deactivations take effect immediately.
func (a *authUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	subject, _, err := a.tokenService.VerifyAndDecode(token)
	if err != nil {
		return nil, err
	}

	user, err := a.accountStore.FindActiveByEmail(ctx, subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	return authDomain.NewPrincipal(user), nil
}

func (a *authUseCase) issueFor(user *userDomain.User) (*authDomain.LoginOutput, error) {
	token, err := a.tokenService.Issue(user.Email, map[string]any{
		roleClaim: string(user.Role),
	})
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to issue token")
	}

	return &authDomain.LoginOutput{
		Token:  token,
		Role:   user.Role,
		Name:   user.Name,
		Email:  user.Email,
		UserID: user.ID,
	}, nil
}
