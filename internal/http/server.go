package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	articleHTTP "github.com/theclub/api/internal/article/http"
	authHTTP "github.com/theclub/api/internal/auth/http"
	authUseCase "github.com/theclub/api/internal/auth/usecase"
	"github.com/theclub/api/internal/config"
	"github.com/theclub/api/internal/metrics"
	userDomain "github.com/theclub/api/internal/user/domain"
	userHTTP "github.com/theclub/api/internal/user/http"
)

// RouterConfig carries everything the router needs to wire routes to handlers.
type RouterConfig struct {
	Config          *config.Config
	Logger          *slog.Logger
	AuthUseCase     authUseCase.AuthUseCase
	AuthHandler     *authHTTP.AuthHandler
	UserHandler     *userHTTP.UserHandler
	ArticleHandler  *articleHTTP.ArticleHandler
	MetricsProvider *metrics.Provider
	DB              *sql.DB
}

// NewRouter builds the Gin engine with all middleware and the route policy
// table. Authentication runs globally and never rejects; each route declares
// the roles it requires, and everything not explicitly public denies
// anonymous access.
func NewRouter(rc RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(rc.Logger))

	if corsMiddleware := createCORSMiddleware(
		rc.Config.CORSEnabled,
		rc.Config.CORSAllowOrigins,
		rc.Logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if rc.MetricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(
			rc.MetricsProvider.MeterProvider(),
			rc.Config.MetricsNamespace,
		))
	}

	router.Use(authHTTP.AuthenticationMiddleware(rc.AuthUseCase, rc.Logger))

	// Health and readiness
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/ready", func(c *gin.Context) {
		if rc.DB != nil {
			if err := rc.DB.PingContext(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	v1 := router.Group("/v1")

	// Authentication endpoints
	auth := v1.Group("/auth")
	{
		loginHandlers := []gin.HandlerFunc{}
		if rc.Config.RateLimitLoginEnabled {
			loginHandlers = append(loginHandlers, authHTTP.LoginRateLimitMiddleware(
				rc.Config.RateLimitLoginRequestsPerSec,
				rc.Config.RateLimitLoginBurst,
				rc.Logger,
			))
		}
		loginHandlers = append(loginHandlers, rc.AuthHandler.LoginHandler)
		auth.POST("/login", loginHandlers...)

		auth.POST("/refresh", rc.AuthHandler.RefreshHandler)
		auth.POST("/register", rc.UserHandler.RegisterHandler)
		auth.POST("/logout",
			authHTTP.RequireAuthenticated(rc.Logger),
			rc.AuthHandler.LogoutHandler,
		)
	}

	// Articles: reads are public, mutations require writer roles; the
	// author-or-editor rule on mutations is enforced in the use case.
	articles := v1.Group("/articles")
	{
		articles.GET("", rc.ArticleHandler.ListArticlesHandler)
		articles.GET("/:id", rc.ArticleHandler.GetArticleHandler)

		writerRoles := []userDomain.Role{
			userDomain.RoleWriter,
			userDomain.RoleEditor,
			userDomain.RoleAdmin,
		}
		articles.POST("",
			authHTTP.RequireRole(rc.Logger, writerRoles...),
			rc.ArticleHandler.CreateArticleHandler,
		)
		articles.PUT("/:id",
			authHTTP.RequireRole(rc.Logger, writerRoles...),
			rc.ArticleHandler.UpdateArticleHandler,
		)
		articles.DELETE("/:id",
			authHTTP.RequireRole(rc.Logger, writerRoles...),
			rc.ArticleHandler.DeleteArticleHandler,
		)
	}

	// User administration
	users := v1.Group("/users")
	{
		users.GET("",
			authHTTP.RequireRole(rc.Logger, userDomain.RoleAdmin),
			rc.UserHandler.ListUsersHandler,
		)
		users.GET("/:id",
			authHTTP.RequireSelfOrRole(rc.Logger, "id", userDomain.RoleAdmin),
			rc.UserHandler.GetUserHandler,
		)
	}

	return router
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the API server with the router built from rc.
func NewServer(rc RouterConfig) *Server {
	router := NewRouter(rc)

	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", rc.Config.ServerHost, rc.Config.ServerPort),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: rc.Logger,
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
