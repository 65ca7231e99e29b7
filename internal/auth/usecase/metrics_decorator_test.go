package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/theclub/api/internal/auth/domain"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

// mockAuthUseCase is a mock implementation of AuthUseCase for testing.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) Refresh(ctx context.Context, token string) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

func TestAuthUseCaseWithMetrics_Login(t *testing.T) {
	ctx := context.Background()
	input := &authDomain.LoginInput{Email: "alice@club.edu", Password: "Sup3rS3cret!"}

	t.Run("Success_RecordsSuccessStatus", func(t *testing.T) {
		next := &mockAuthUseCase{}
		m := &mockBusinessMetrics{}

		output := &authDomain.LoginOutput{Token: "signed-token"}
		next.On("Login", ctx, input).Return(output, nil).Once()
		m.On("RecordOperation", ctx, "auth", "login", "success").Once()
		m.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").Once()

		decorated := NewAuthUseCaseWithMetrics(next, m)
		got, err := decorated.Login(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, output, got)
		m.AssertExpectations(t)
	})

	t.Run("Failure_RecordsErrorStatus", func(t *testing.T) {
		next := &mockAuthUseCase{}
		m := &mockBusinessMetrics{}

		next.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		m.On("RecordOperation", ctx, "auth", "login", "error").Once()
		m.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").Once()

		decorated := NewAuthUseCaseWithMetrics(next, m)
		got, err := decorated.Login(ctx, input)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, authDomain.ErrInvalidCredentials)
		m.AssertExpectations(t)
	})
}

func TestAuthUseCaseWithMetrics_Refresh(t *testing.T) {
	ctx := context.Background()

	next := &mockAuthUseCase{}
	m := &mockBusinessMetrics{}

	output := &authDomain.LoginOutput{Token: "new-token"}
	next.On("Refresh", ctx, "old-token").Return(output, nil).Once()
	m.On("RecordOperation", ctx, "auth", "refresh", "success").Once()
	m.On("RecordDuration", ctx, "auth", "refresh", mock.AnythingOfType("time.Duration"), "success").Once()

	decorated := NewAuthUseCaseWithMetrics(next, m)
	got, err := decorated.Refresh(ctx, "old-token")

	require.NoError(t, err)
	assert.Equal(t, output, got)
	m.AssertExpectations(t)
}

func TestAuthUseCaseWithMetrics_Authenticate(t *testing.T) {
	ctx := context.Background()

	next := &mockAuthUseCase{}
	m := &mockBusinessMetrics{}

	next.On("Authenticate", ctx, "bad-token").Return(nil, authDomain.ErrTokenMalformed).Once()
	m.On("RecordOperation", ctx, "auth", "authenticate", "error").Once()
	m.On("RecordDuration", ctx, "auth", "authenticate", mock.AnythingOfType("time.Duration"), "error").Once()

	decorated := NewAuthUseCaseWithMetrics(next, m)
	principal, err := decorated.Authenticate(ctx, "bad-token")

	assert.Nil(t, principal)
	assert.ErrorIs(t, err, authDomain.ErrTokenMalformed)
	m.AssertExpectations(t)
}
