package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/theclub/api/internal/article/domain"
	authDomain "github.com/theclub/api/internal/auth/domain"
	"github.com/theclub/api/internal/metrics"
)

// articleUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type articleUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewArticleUseCaseWithMetrics wraps an article UseCase with metrics recording.
func NewArticleUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &articleUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (a *articleUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}
	a.metrics.RecordOperation(ctx, "article", operation, status)
	a.metrics.RecordDuration(ctx, "article", operation, time.Since(start), status)
}

// Create records metrics for article creation operations.
func (a *articleUseCaseWithMetrics) Create(
	ctx context.Context,
	principal *authDomain.Principal,
	input CreateArticleInput,
) (*domain.Article, error) {
	start := time.Now()
	article, err := a.next.Create(ctx, principal, input)
	a.record(ctx, "create", start, err)
	return article, err
}

// Get records metrics for article retrieval operations.
func (a *articleUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	start := time.Now()
	article, err := a.next.Get(ctx, id)
	a.record(ctx, "get", start, err)
	return article, err
}

// List records metrics for article list operations.
func (a *articleUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.Article, error) {
	start := time.Now()
	articles, err := a.next.List(ctx, offset, limit)
	a.record(ctx, "list", start, err)
	return articles, err
}

// Update records metrics for article update operations.
func (a *articleUseCaseWithMetrics) Update(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
	input UpdateArticleInput,
) (*domain.Article, error) {
	start := time.Now()
	article, err := a.next.Update(ctx, principal, id, input)
	a.record(ctx, "update", start, err)
	return article, err
}

// Delete records metrics for article delete operations.
func (a *articleUseCaseWithMetrics) Delete(
	ctx context.Context,
	principal *authDomain.Principal,
	id uuid.UUID,
) error {
	start := time.Now()
	err := a.next.Delete(ctx, principal, id)
	a.record(ctx, "delete", start, err)
	return err
}
