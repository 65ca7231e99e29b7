// Package http provides HTTP handlers for article operations.
package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/theclub/api/internal/article/http/dto"
	articleUseCase "github.com/theclub/api/internal/article/usecase"
	authHTTP "github.com/theclub/api/internal/auth/http"
	apperrors "github.com/theclub/api/internal/errors"
	"github.com/theclub/api/internal/httputil"
)

// ArticleHandler handles HTTP requests for article operations.
type ArticleHandler struct {
	articleUseCase articleUseCase.UseCase
	logger         *slog.Logger
}

// NewArticleHandler creates a new article handler with required dependencies.
func NewArticleHandler(uc articleUseCase.UseCase, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleUseCase: uc,
		logger:         logger,
	}
}

// CreateArticleHandler creates a new article authored by the caller.
// POST /v1/articles - Requires WRITER, EDITOR or ADMIN.
func (h *ArticleHandler) CreateArticleHandler(c *gin.Context) {
	var input articleUseCase.CreateArticleInput

	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	principal, _ := authHTTP.GetPrincipal(c.Request.Context())

	article, err := h.articleUseCase.Create(c.Request.Context(), principal, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.NewArticleResponse(article))
}

// GetArticleHandler retrieves a single article.
// GET /v1/articles/:id - Public.
func (h *ArticleHandler) GetArticleHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, apperrors.New("id must be a valid UUID"), h.logger)
		return
	}

	article, err := h.articleUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewArticleResponse(article))
}

// ListArticlesHandler retrieves articles with pagination.
// GET /v1/articles?offset=0&limit=50 - Public.
func (h *ArticleHandler) ListArticlesHandler(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	articles, err := h.articleUseCase.List(c.Request.Context(), offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": dto.NewArticleListResponse(articles)})
}

// UpdateArticleHandler modifies an article.
// PUT /v1/articles/:id - Requires WRITER, EDITOR or ADMIN; writers may only
// update their own articles.
func (h *ArticleHandler) UpdateArticleHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, apperrors.New("id must be a valid UUID"), h.logger)
		return
	}

	var input articleUseCase.UpdateArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	principal, _ := authHTTP.GetPrincipal(c.Request.Context())

	article, err := h.articleUseCase.Update(c.Request.Context(), principal, id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.NewArticleResponse(article))
}

// DeleteArticleHandler removes an article.
// DELETE /v1/articles/:id - Requires WRITER, EDITOR or ADMIN; writers may only
// delete their own articles.
func (h *ArticleHandler) DeleteArticleHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleBadRequestGin(c, apperrors.New("id must be a valid UUID"), h.logger)
		return
	}

	principal, _ := authHTTP.GetPrincipal(c.Request.Context())

	if err := h.articleUseCase.Delete(c.Request.Context(), principal, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
