// Package usecase implements the article business logic, including the
// author-or-editor ownership rule for mutations.
package usecase

import (
	"context"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/theclub/api/internal/article/domain"
	authDomain "github.com/theclub/api/internal/auth/domain"
	"github.com/theclub/api/internal/database"
	apperrors "github.com/theclub/api/internal/errors"
	userDomain "github.com/theclub/api/internal/user/domain"
	appValidation "github.com/theclub/api/internal/validation"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// CreateArticleInput contains the input data for creating an article.
type CreateArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateArticleInput contains the input data for updating an article.
type UpdateArticleInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UseCase defines the interface for article business logic operations.
// Mutations take the caller's principal; reads are public.
type UseCase interface {
	Create(ctx context.Context, principal *authDomain.Principal, input CreateArticleInput) (*domain.Article, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Article, error)
	Update(ctx context.Context, principal *authDomain.Principal, id uuid.UUID, input UpdateArticleInput) (*domain.Article, error)
	Delete(ctx context.Context, principal *authDomain.Principal, id uuid.UUID) error
}

// ArticleRepository interface defines article repository operations.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	Update(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, offset, limit int) ([]*domain.Article, error)
}

// ArticleUseCase handles article-related business logic.
type ArticleUseCase struct {
	txManager   database.TxManager
	articleRepo ArticleRepository
}

// NewArticleUseCase creates a new ArticleUseCase.
func NewArticleUseCase(txManager database.TxManager, articleRepo ArticleRepository) UseCase {
	return &ArticleUseCase{
		txManager:   txManager,
		articleRepo: articleRepo,
	}
}

func validateArticleFields(title, content string) error {
	err := validation.Errors{
		"title": validation.Validate(title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		"content": validation.Validate(content,
			validation.Required.Error("content is required"),
			appValidation.NotBlank,
		),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Create stores a new article authored by the caller. The route policy has
// already checked the writer roles; authorship is taken from the principal,
// never from the request body.
func (uc *ArticleUseCase) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input CreateArticleInput,
) (*domain.Article, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if err := validateArticleFields(input.Title, input.Content); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate article id")
	}

	article := &domain.Article{
		ID:       id,
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: principal.ID(),
	}

	if err := uc.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

// Get retrieves a single article.
func (uc *ArticleUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	return uc.articleRepo.GetByID(ctx, id)
}

// List retrieves articles with normalized pagination.
func (uc *ArticleUseCase) List(ctx context.Context, offset, limit int) ([]*domain.Article, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return uc.articleRepo.List(ctx, offset, limit)
}

// Update modifies an article. The read-check-write sequence runs inside a
// transaction so the ownership check and the write see the same row.
func (uc *ArticleUseCase) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
	input UpdateArticleInput,
) (*domain.Article, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if err := validateArticleFields(input.Title, input.Content); err != nil {
		return nil, err
	}

	var updated *domain.Article
	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		article, err := uc.articleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkOwnership(principal, article); err != nil {
			return err
		}

		article.Title = input.Title
		article.Content = input.Content
		if err := uc.articleRepo.Update(ctx, article); err != nil {
			return err
		}

		updated = article
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes an article, subject to the same ownership rule as Update.
func (uc *ArticleUseCase) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		article, err := uc.articleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := checkOwnership(principal, article); err != nil {
			return err
		}
		return uc.articleRepo.Delete(ctx, id)
	})
}

// checkOwnership allows the author of the article and anyone with an
// editorial role.
func checkOwnership(principal *authDomain.Principal, article *domain.Article) error {
	if article.AuthorID == principal.ID() {
		return nil
	}
	if principal.Role().In(userDomain.RoleEditor, userDomain.RoleAdmin) {
		return nil
	}
	return domain.ErrNotArticleAuthor
}
