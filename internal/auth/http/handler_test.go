package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/theclub/api/internal/auth/domain"
	apperrors "github.com/theclub/api/internal/errors"
	userDomain "github.com/theclub/api/internal/user/domain"
)

func setupAuthRouter(authUC *mockAuthUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(authUC, testLogger())

	router := gin.New()
	router.Use(AuthenticationMiddleware(authUC, testLogger()))
	router.POST("/v1/auth/login", handler.LoginHandler)
	router.POST("/v1/auth/refresh", handler.RefreshHandler)
	router.POST("/v1/auth/logout", handler.LogoutHandler)
	return router
}

func postJSON(router *gin.Engine, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Login", mock.Anything, &authDomain.LoginInput{
			Email:    "alice@club.edu",
			Password: "Sup3rS3cret!",
		}).Return(&authDomain.LoginOutput{
			Token:  "signed-token",
			Role:   userDomain.RoleEditor,
			Name:   "Alice Editor",
			Email:  "alice@club.edu",
			UserID: 42,
		}, nil).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/login", map[string]string{
			"email":    "alice@club.edu",
			"password": "Sup3rS3cret!",
		}, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "signed-token", body["token"])
		assert.Equal(t, "Bearer", body["type"])
		assert.Equal(t, "EDITOR", body["role"])
		assert.Equal(t, float64(42), body["user_id"])
	})

	t.Run("Failure_InvalidCredentialsIs401", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Login", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrInvalidCredentials).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/login", map[string]string{
			"email":    "alice@club.edu",
			"password": "wrong",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		// The body never hints at which part of the credentials was wrong
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "unauthorized", body["error"])
	})

	t.Run("Failure_InvalidEmailFormatIs422", func(t *testing.T) {
		authUC := &mockAuthUseCase{}

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/login", map[string]string{
			"email":    "not-an-email",
			"password": "Sup3rS3cret!",
		}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		authUC.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Failure_MalformedJSONIs400", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		router := setupAuthRouter(authUC)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure_InternalErrorIs500", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Login", mock.Anything, mock.Anything).
			Return(nil, apperrors.New("connection refused")).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/login", map[string]string{
			"email":    "alice@club.edu",
			"password": "Sup3rS3cret!",
		}, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Refresh", mock.Anything, "old-token").
			Return(&authDomain.LoginOutput{
				Token: "new-token",
				Role:  userDomain.RoleReader,
				Email: "alice@club.edu",
			}, nil).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/refresh", map[string]string{"token": "old-token"}, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "new-token", body["token"])
	})

	t.Run("Failure_ExpiredTokenIs400", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Refresh", mock.Anything, "expired-token").
			Return(nil, authDomain.ErrTokenExpired).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/refresh", map[string]string{"token": "expired-token"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure_MalformedTokenIs400", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Refresh", mock.Anything, "garbage").
			Return(nil, authDomain.ErrTokenMalformed).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/refresh", map[string]string{"token": "garbage"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure_UnresolvableSubjectIs400", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Refresh", mock.Anything, "ghost-token").
			Return(nil, authDomain.ErrInvalidCredentials).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/refresh", map[string]string{"token": "ghost-token"}, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failure_MissingTokenIs422", func(t *testing.T) {
		authUC := &mockAuthUseCase{}

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/refresh", map[string]string{}, nil)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		authUC.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
	})

	t.Run("Failure_InternalErrorIs500", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Refresh", mock.Anything, "old-token").
			Return(nil, apperrors.New("connection refused")).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/refresh", map[string]string{"token": "old-token"}, nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("Success_AuthenticatedLogout", func(t *testing.T) {
		authUC := &mockAuthUseCase{}
		authUC.On("Authenticate", mock.Anything, "valid-token").
			Return(principalFor(userDomain.RoleReader, 7), nil).Once()

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/logout", nil, map[string]string{
			"Authorization": "Bearer valid-token",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failure_AnonymousLogoutIs401", func(t *testing.T) {
		authUC := &mockAuthUseCase{}

		router := setupAuthRouter(authUC)
		w := postJSON(router, "/v1/auth/logout", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
