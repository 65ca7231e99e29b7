package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/theclub/api/internal/article/domain"
	"github.com/theclub/api/internal/database"

	apperrors "github.com/theclub/api/internal/errors"
)

// MySQLArticleRepository handles article persistence for MySQL.
// Article IDs are stored as BINARY(16).
type MySQLArticleRepository struct {
	db *sql.DB
}

// NewMySQLArticleRepository creates a new MySQLArticleRepository.
func NewMySQLArticleRepository(db *sql.DB) *MySQLArticleRepository {
	return &MySQLArticleRepository{
		db: db,
	}
}

// Create inserts a new article.
func (r *MySQLArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO articles (id, title, content, author_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, NOW(), NOW())`

	idBytes, err := article.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal article id")
	}

	_, err = querier.ExecContext(ctx, query, idBytes, article.Title, article.Content, article.AuthorID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create article")
	}
	return nil
}

// GetByID retrieves an article by ID.
func (r *MySQLArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, content, author_id, created_at, updated_at
			  FROM articles WHERE id = ?`

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal article id")
	}

	var article domain.Article
	var rawID []byte
	err = querier.QueryRowContext(ctx, query, idBytes).Scan(
		&rawID, &article.Title, &article.Content,
		&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get article by id")
	}

	if err := article.ID.UnmarshalBinary(rawID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal article id")
	}

	return &article, nil
}

// Update persists changes to an article's title and content.
func (r *MySQLArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE articles SET title = ?, content = ?, updated_at = NOW()
			  WHERE id = ?`

	idBytes, err := article.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal article id")
	}

	result, err := querier.ExecContext(ctx, query, article.Title, article.Content, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to update article")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// Delete removes an article.
func (r *MySQLArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	idBytes, err := id.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal article id")
	}

	result, err := querier.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, idBytes)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete article")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if rows == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// List retrieves articles ordered by newest first with offset/limit pagination.
func (r *MySQLArticleRepository) List(ctx context.Context, offset, limit int) ([]*domain.Article, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, content, author_id, created_at, updated_at
			  FROM articles ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list articles")
	}
	defer func() { _ = rows.Close() }()

	var articles []*domain.Article
	for rows.Next() {
		var article domain.Article
		var rawID []byte
		if err := rows.Scan(
			&rawID, &article.Title, &article.Content,
			&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan article")
		}
		if err := article.ID.UnmarshalBinary(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal article id")
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate articles")
	}

	return articles, nil
}
