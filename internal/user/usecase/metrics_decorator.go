package usecase

import (
	"context"
	"time"

	"github.com/theclub/api/internal/metrics"
	"github.com/theclub/api/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a user UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for account registration operations.
func (u *userUseCaseWithMetrics) Register(
	ctx context.Context,
	input RegisterUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "register", status)
	u.metrics.RecordDuration(ctx, "user", "register", time.Since(start), status)

	return user, err
}

// GetByID records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByID(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "get", status)
	u.metrics.RecordDuration(ctx, "user", "get", time.Since(start), status)

	return user, err
}

// List records metrics for user list operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "list", status)
	u.metrics.RecordDuration(ctx, "user", "list", time.Since(start), status)

	return users, err
}
