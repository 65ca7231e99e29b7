// Package http provides HTTP handlers for user account operations.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/theclub/api/internal/errors"
	"github.com/theclub/api/internal/httputil"
	"github.com/theclub/api/internal/user/http/dto"
	userUseCase "github.com/theclub/api/internal/user/usecase"
)

// UserHandler handles HTTP requests for user account operations.
type UserHandler struct {
	userUseCase userUseCase.UseCase
	logger      *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(uc userUseCase.UseCase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: uc,
		logger:      logger,
	}
}

// RegisterHandler creates a new reader account.
// POST /v1/auth/register - No authentication required.
// Returns 201 Created with the new account (password hash excluded).
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input userUseCase.RegisterUserInput

	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.Register(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// GetUserHandler retrieves a single account.
// GET /v1/users/:id - Requires self access or the ADMIN role.
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httputil.HandleBadRequestGin(c, apperrors.New("id must be a number"), h.logger)
		return
	}

	user, err := h.userUseCase.GetByID(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ListUsersHandler retrieves accounts with pagination.
// GET /v1/users?offset=0&limit=50 - Requires the ADMIN role.
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	users, err := h.userUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.NewUserListResponse(users)})
}
