// Package domain defines the article domain model and errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/theclub/api/internal/errors"
)

// Article domain errors.
var (
	// ErrArticleNotFound indicates the article does not exist.
	ErrArticleNotFound = errors.Wrap(errors.ErrNotFound, "article not found")

	// ErrNotArticleAuthor indicates the caller is not the author and lacks an
	// editorial role.
	ErrNotArticleAuthor = errors.Wrap(errors.ErrForbidden, "not the article author")
)

// Article represents a published or draft piece written by a member.
type Article struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
