package http

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/theclub/api/internal/auth/domain"
	authUseCase "github.com/theclub/api/internal/auth/usecase"
	apperrors "github.com/theclub/api/internal/errors"
	"github.com/theclub/api/internal/httputil"
	userDomain "github.com/theclub/api/internal/user/domain"
)

// AuthenticationMiddleware resolves the Bearer token in the Authorization
// header to a request principal. It runs on every route and NEVER rejects a
// request on its own:
//
//   - No Authorization header, or a header without the Bearer scheme, leaves
//     the request anonymous and continues
//   - A malformed, tampered or expired token, or a token whose subject no
//     longer resolves to an active account, is logged at warn level and the
//     request continues anonymously; the authorization layer decides whether
//     anonymous access is acceptable for the route
//   - An infrastructure failure during account lookup aborts with 500; a
//     storage outage must not be mistaken for bad credentials
//
// On success the principal is stored in the request context for GetPrincipal.
func AuthenticationMiddleware(
	authUC authUseCase.AuthUseCase,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Next()
			return
		}

		principal, err := authUC.Authenticate(c.Request.Context(), token)
		if err != nil {
			switch {
			case apperrors.Is(err, authDomain.ErrTokenExpired),
				apperrors.Is(err, authDomain.ErrTokenMalformed),
				apperrors.Is(err, authDomain.ErrInvalidCredentials):
				logger.Warn("token rejected, continuing as anonymous",
					slog.String("path", c.Request.URL.Path),
					slog.String("error", err.Error()))
				c.Next()
				return
			default:
				httputil.HandleErrorGin(c, err, logger)
				c.Abort()
				return
			}
		}

		ctx := WithPrincipal(c.Request.Context(), principal)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("identity", principal.Identity()),
			slog.String("role", string(principal.Role())))

		c.Next()
	}
}

// extractBearerToken parses a "Bearer <token>" Authorization header value
// (case-insensitive scheme). Returns false when the header is absent, uses a
// different scheme, or carries an empty token.
func extractBearerToken(authHeader string) (string, bool) {
	if authHeader == "" {
		return "", false
	}

	const bearerPrefix = "bearer "
	if len(authHeader) < len(bearerPrefix) ||
		!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}

	token := authHeader[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

// RequireRole enforces deny-by-default role authorization. It MUST run after
// AuthenticationMiddleware.
//
// Returns 401 when the request carries no principal and 403 when the
// principal's role is not in the allowed set. The two outcomes are
// independent: a valid token with an insufficient role is 403, never 401.
func RequireRole(logger *slog.Logger, roles ...userDomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !principal.Role().In(roles...) {
			logger.Warn("authorization denied",
				slog.String("identity", principal.Identity()),
				slog.String("role", string(principal.Role())),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAuthenticated allows any authenticated principal regardless of role.
// Anonymous requests get 401.
func RequireAuthenticated(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetPrincipal(c.Request.Context()); !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSelfOrRole allows the request when the principal's account id matches
// the numeric path parameter, or when the principal's role is in the allowed
// set. Used for resources a member may read about themselves while staff may
// read about anyone.
func RequireSelfOrRole(logger *slog.Logger, idParam string, roles ...userDomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c.Request.Context())
		if !ok {
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if id, err := strconv.ParseInt(c.Param(idParam), 10, 64); err == nil && id == principal.ID() {
			c.Next()
			return
		}

		if !principal.Role().In(roles...) {
			logger.Warn("authorization denied",
				slog.String("identity", principal.Identity()),
				slog.String("role", string(principal.Role())),
				slog.String("path", c.Request.URL.Path))
			httputil.HandleErrorGin(c, apperrors.ErrForbidden, logger)
			c.Abort()
			return
		}

		c.Next()
	}
}
