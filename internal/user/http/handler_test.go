package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/theclub/api/internal/errors"
	"github.com/theclub/api/internal/user/domain"
	userUseCase "github.com/theclub/api/internal/user/usecase"
)

// mockUserUseCase is a mock implementation of the user UseCase for testing.
type mockUserUseCase struct {
	mock.Mock
}

func (m *mockUserUseCase) Register(
	ctx context.Context,
	input userUseCase.RegisterUserInput,
) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserUseCase) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupUserRouter(uc *mockUserUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(uc, testLogger())

	router := gin.New()
	router.POST("/v1/auth/register", handler.RegisterHandler)
	router.GET("/v1/users", handler.ListUsersHandler)
	router.GET("/v1/users/:id", handler.GetUserHandler)
	return router
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUserUseCase{}
		input := userUseCase.RegisterUserInput{
			Name:     "John Doe",
			Email:    "john@club.edu",
			Password: "Sup3rS3cret!",
		}
		uc.On("Register", mock.Anything, input).Return(&domain.User{
			ID:        1,
			Name:      "John Doe",
			Email:     "john@club.edu",
			Password:  "hashed",
			Role:      domain.RoleReader,
			Active:    true,
			CreatedAt: time.Now(),
		}, nil).Once()

		router := setupUserRouter(uc)
		payload, _ := json.Marshal(input)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "READER", body["role"])
		assert.NotContains(t, body, "password")
	})

	t.Run("Failure_ValidationErrorIs422", func(t *testing.T) {
		uc := &mockUserUseCase{}
		uc.On("Register", mock.Anything, mock.Anything).
			Return(nil, apperrors.Wrap(apperrors.ErrInvalidInput, "password too weak")).Once()

		router := setupUserRouter(uc)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register",
			bytes.NewReader([]byte(`{"name":"x","email":"x@club.edu","password":"weak"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Failure_DuplicateEmailIs409", func(t *testing.T) {
		uc := &mockUserUseCase{}
		uc.On("Register", mock.Anything, mock.Anything).
			Return(nil, domain.ErrUserAlreadyExists).Once()

		router := setupUserRouter(uc)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register",
			bytes.NewReader([]byte(`{"name":"x","email":"taken@club.edu","password":"Sup3rS3cret!"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failure_MalformedJSONIs400", func(t *testing.T) {
		uc := &mockUserUseCase{}

		router := setupUserRouter(uc)
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/register",
			bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUserUseCase{}
		uc.On("GetByID", mock.Anything, int64(42)).Return(&domain.User{
			ID:    42,
			Name:  "Alice",
			Email: "alice@club.edu",
			Role:  domain.RoleEditor,
		}, nil).Once()

		router := setupUserRouter(uc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/42", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(42), body["id"])
		assert.Equal(t, "EDITOR", body["role"])
	})

	t.Run("Failure_NotFoundIs404", func(t *testing.T) {
		uc := &mockUserUseCase{}
		uc.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound).Once()

		router := setupUserRouter(uc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/99", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failure_NonNumericIDIs400", func(t *testing.T) {
		uc := &mockUserUseCase{}

		router := setupUserRouter(uc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		uc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUserUseCase{}
		uc.On("List", mock.Anything, 0, 50).Return([]*domain.User{
			{ID: 1, Name: "Alice", Role: domain.RoleAdmin},
			{ID: 2, Name: "Bob", Role: domain.RoleReader},
		}, nil).Once()

		router := setupUserRouter(uc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string][]map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body["users"], 2)
	})

	t.Run("Success_ForwardsPaginationParams", func(t *testing.T) {
		uc := &mockUserUseCase{}
		uc.On("List", mock.Anything, 20, 10).Return([]*domain.User{}, nil).Once()

		router := setupUserRouter(uc)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/users?offset=20&limit=10", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})
}
