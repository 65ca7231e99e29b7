// Package repository provides data persistence implementations for articles.
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

// PostgreSQLArticleRepository handles article persistence for PostgreSQL.
type PostgreSQLArticleRepository struct {
	db *sql.DB
}

// NewPostgreSQLArticleRepository creates a new PostgreSQLArticleRepository.
func NewPostgreSQLArticleRepository(db *sql.DB) *PostgreSQLArticleRepository {
	return &PostgreSQLArticleRepository{
		db: db,
	}
}

// Create inserts a new article and fills in the generated timestamps.
func (r *PostgreSQLArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO articles (id, title, content, author_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err := querier.QueryRowContext(ctx, query,
		article.ID, article.Title, article.Content, article.AuthorID,
	).Scan(&article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create article")
	}
	return nil
}

// GetByID retrieves an article by ID.
func (r *PostgreSQLArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, content, author_id, created_at, updated_at
			  FROM articles WHERE id = $1`

	var article domain.Article
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&article.ID, &article.Title, &article.Content,
		&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get article by id")
	}

	return &article, nil
}

// Update persists changes to an article's title and content.
func (r *PostgreSQLArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE articles SET title = $1, content = $2, updated_at = NOW()
			  WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, article.Title, article.Content, article.ID)
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
func (r *PostgreSQLArticleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
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
func (r *PostgreSQLArticleRepository) List(ctx context.Context, offset, limit int) ([]*domain.Article, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, title, content, author_id, created_at, updated_at
			  FROM articles ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list articles")
	}
	defer func() { _ = rows.Close() }()

	var articles []*domain.Article
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ID, &article.Title, &article.Content,
			&article.AuthorID, &article.CreatedAt, &article.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan article")
		}
		articles = append(articles, &article)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate articles")
	}

	return articles, nil
}
