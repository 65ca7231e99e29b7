package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/theclub/api/internal/auth/domain"
	"github.com/theclub/api/internal/auth/http/dto"
	authUseCase "github.com/theclub/api/internal/auth/usecase"
	apperrors "github.com/theclub/api/internal/errors"
	"github.com/theclub/api/internal/httputil"
	customValidation "github.com/theclub/api/internal/validation"
)

// AuthHandler handles HTTP requests for login, refresh and logout.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUC authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUC,
		logger:      logger,
	}
}

// LoginHandler authenticates primary credentials and issues a token.
// POST /v1/auth/login - No authentication required.
// Returns 200 OK with the token, or 401 for any credential failure.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &authDomain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.authUseCase.Login(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewLoginResponse(output))
}

// RefreshHandler exchanges a still-valid token for a fresh one.
// POST /v1/auth/refresh - No authentication middleware required; the token in
// the body is the credential.
// Returns 200 OK with the new token. An expired, malformed or unresolvable
// token is a 400: the client presented an unusable artifact and must log in
// again.
func (h *AuthHandler) RefreshHandler(c *gin.Context) {
	var req dto.RefreshRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	output, err := h.authUseCase.Refresh(c.Request.Context(), req.Token)
	if err != nil {
		switch {
		case apperrors.Is(err, authDomain.ErrTokenExpired),
			apperrors.Is(err, authDomain.ErrTokenMalformed),
			apperrors.Is(err, authDomain.ErrInvalidCredentials):
			httputil.HandleBadRequestGin(c, apperrors.New("token cannot be refreshed"), h.logger)
		default:
			httputil.HandleErrorGin(c, err, h.logger)
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewLoginResponse(output))
}

// LogoutHandler acknowledges a logout request.
// POST /v1/auth/logout - Requires an authenticated principal.
//
// Tokens are self-contained and there is no server-side revocation list, so
// the token stays technically valid until expiry. The client is expected to
// discard it; this endpoint exists so clients have a uniform logout call.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	principal, ok := GetPrincipal(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	h.logger.Info("logout",
		slog.String("identity", principal.Identity()))

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "logged out, discard the token client-side",
	})
}
