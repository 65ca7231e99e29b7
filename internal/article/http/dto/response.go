// Package dto provides data transfer objects for article HTTP responses.
package dto

import (
	"time"

	"github.com/theclub/api/internal/article/domain"
)

// ArticleResponse represents an article in API responses.
type ArticleResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewArticleResponse builds an ArticleResponse from a domain article.
func NewArticleResponse(article *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:        article.ID.String(),
		Title:     article.Title,
		Content:   article.Content,
		AuthorID:  article.AuthorID,
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}
}

// NewArticleListResponse builds a list of ArticleResponse from domain articles.
func NewArticleListResponse(articles []*domain.Article) []ArticleResponse {
	responses := make([]ArticleResponse, 0, len(articles))
	for _, article := range articles {
		responses = append(responses, NewArticleResponse(article))
	}
	return responses
}
