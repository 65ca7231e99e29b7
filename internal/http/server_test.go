package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	articleDomain "github.com/theclub/api/internal/article/domain"
	articleHTTP "github.com/theclub/api/internal/article/http"
	articleUseCase "github.com/theclub/api/internal/article/usecase"
	authDomain "github.com/theclub/api/internal/auth/domain"
	authHTTP "github.com/theclub/api/internal/auth/http"
	"github.com/theclub/api/internal/config"
	userDomain "github.com/theclub/api/internal/user/domain"
	userHTTP "github.com/theclub/api/internal/user/http"
	userUseCase "github.com/theclub/api/internal/user/usecase"
)

// stubAuthUseCase resolves a fixed set of tokens to principals.
type stubAuthUseCase struct {
	principals map[string]*authDomain.Principal
}

func (s *stubAuthUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error) {
	return nil, authDomain.ErrInvalidCredentials
}

func (s *stubAuthUseCase) Refresh(ctx context.Context, token string) (*authDomain.LoginOutput, error) {
	return nil, authDomain.ErrTokenMalformed
}

func (s *stubAuthUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	if principal, ok := s.principals[token]; ok {
		return principal, nil
	}
	return nil, authDomain.ErrTokenMalformed
}

// stubUserUseCase serves canned users.
type stubUserUseCase struct{}

func (s *stubUserUseCase) Register(ctx context.Context, input userUseCase.RegisterUserInput) (*userDomain.User, error) {
	return &userDomain.User{ID: 1, Name: input.Name, Email: input.Email, Role: userDomain.RoleReader, Active: true}, nil
}

func (s *stubUserUseCase) GetByID(ctx context.Context, id int64) (*userDomain.User, error) {
	return &userDomain.User{ID: id, Name: "Someone", Email: "someone@club.edu", Role: userDomain.RoleReader}, nil
}

func (s *stubUserUseCase) List(ctx context.Context, offset, limit int) ([]*userDomain.User, error) {
	return []*userDomain.User{}, nil
}

// stubArticleUseCase serves canned articles.
type stubArticleUseCase struct{}

func (s *stubArticleUseCase) Create(ctx context.Context, principal *authDomain.Principal, input articleUseCase.CreateArticleInput) (*articleDomain.Article, error) {
	return &articleDomain.Article{ID: uuid.Must(uuid.NewV7()), Title: input.Title, Content: input.Content, AuthorID: principal.ID()}, nil
}

func (s *stubArticleUseCase) Get(ctx context.Context, id uuid.UUID) (*articleDomain.Article, error) {
	return &articleDomain.Article{ID: id, Title: "Post"}, nil
}

func (s *stubArticleUseCase) List(ctx context.Context, offset, limit int) ([]*articleDomain.Article, error) {
	return []*articleDomain.Article{}, nil
}

func (s *stubArticleUseCase) Update(ctx context.Context, principal *authDomain.Principal, id uuid.UUID, input articleUseCase.UpdateArticleInput) (*articleDomain.Article, error) {
	return &articleDomain.Article{ID: id, Title: input.Title, Content: input.Content}, nil
}

func (s *stubArticleUseCase) Delete(ctx context.Context, principal *authDomain.Principal, id uuid.UUID) error {
	return nil
}

func principalWithRole(role userDomain.Role, id int64) *authDomain.Principal {
	return authDomain.NewPrincipal(&userDomain.User{
		ID:     id,
		Name:   "Someone",
		Email:  "someone@club.edu",
		Role:   role,
		Active: true,
	})
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := discardLogger()
	authUC := &stubAuthUseCase{
		principals: map[string]*authDomain.Principal{
			"reader-token": principalWithRole(userDomain.RoleReader, 10),
			"writer-token": principalWithRole(userDomain.RoleWriter, 20),
			"admin-token":  principalWithRole(userDomain.RoleAdmin, 30),
		},
	}

	cfg := &config.Config{
		CORSEnabled:           false,
		RateLimitLoginEnabled: false,
		MetricsEnabled:        false,
	}

	return NewRouter(RouterConfig{
		Config:         cfg,
		Logger:         logger,
		AuthUseCase:    authUC,
		AuthHandler:    authHTTP.NewAuthHandler(authUC, logger),
		UserHandler:    userHTTP.NewUserHandler(&stubUserUseCase{}, logger),
		ArticleHandler: articleHTTP.NewArticleHandler(&stubArticleUseCase{}, logger),
	})
}

func doRequest(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_RoutePolicies(t *testing.T) {
	router := setupTestRouter(t)
	articleID := uuid.Must(uuid.NewV7()).String()

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"Health_Public", http.MethodGet, "/health", "", http.StatusOK},
		{"Ready_Public", http.MethodGet, "/ready", "", http.StatusOK},

		{"ListArticles_Anonymous", http.MethodGet, "/v1/articles", "", http.StatusOK},
		{"GetArticle_Anonymous", http.MethodGet, "/v1/articles/" + articleID, "", http.StatusOK},
		{"GetArticle_WithInvalidToken", http.MethodGet, "/v1/articles/" + articleID, "garbage", http.StatusOK},

		{"CreateArticle_Anonymous", http.MethodPost, "/v1/articles", "", http.StatusUnauthorized},
		{"CreateArticle_Reader", http.MethodPost, "/v1/articles", "reader-token", http.StatusForbidden},

		{"DeleteArticle_Anonymous", http.MethodDelete, "/v1/articles/" + articleID, "", http.StatusUnauthorized},
		{"DeleteArticle_Reader", http.MethodDelete, "/v1/articles/" + articleID, "reader-token", http.StatusForbidden},
		{"DeleteArticle_Writer", http.MethodDelete, "/v1/articles/" + articleID, "writer-token", http.StatusNoContent},

		{"ListUsers_Anonymous", http.MethodGet, "/v1/users", "", http.StatusUnauthorized},
		{"ListUsers_Writer", http.MethodGet, "/v1/users", "writer-token", http.StatusForbidden},
		{"ListUsers_Admin", http.MethodGet, "/v1/users", "admin-token", http.StatusOK},

		{"GetUser_Self", http.MethodGet, "/v1/users/10", "reader-token", http.StatusOK},
		{"GetUser_OtherAsReader", http.MethodGet, "/v1/users/30", "reader-token", http.StatusForbidden},
		{"GetUser_OtherAsAdmin", http.MethodGet, "/v1/users/10", "admin-token", http.StatusOK},

		{"Logout_Anonymous", http.MethodPost, "/v1/auth/logout", "", http.StatusUnauthorized},
		{"Logout_Reader", http.MethodPost, "/v1/auth/logout", "reader-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.path, tt.token)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouter_InvalidTokenOnPublicRouteStaysAnonymous(t *testing.T) {
	router := setupTestRouter(t)

	// An expired or garbage token must not break public reads
	w := doRequest(router, http.MethodGet, "/v1/articles", "garbage")
	assert.Equal(t, http.StatusOK, w.Code)

	// The same garbage token still cannot reach protected routes
	w = doRequest(router, http.MethodPost, "/v1/articles", "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
