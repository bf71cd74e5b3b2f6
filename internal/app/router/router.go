// Package router builds the gin engine and mounts every route.
package router

import (
	"net/http"
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "social_backend/internal/feature/auth/transport/handler"
	commenthandler "social_backend/internal/feature/comment/transport/handler"
	posthandler "social_backend/internal/feature/post/transport/handler"
	profilehandler "social_backend/internal/feature/profile/transport/handler"
	"social_backend/internal/platform/http/handler"
	"social_backend/internal/platform/http/middleware"
	jwtmw "social_backend/internal/platform/jwt"
)

// Options configures the engine.
type Options struct {
	// BasePath prefixes the API routes. It is expected to be normalized ("" or "/x").
	BasePath       string
	AllowedOrigins []string
	Verifier       jwtmw.Verifier
	Metrics        *middleware.HTTPMetrics
	// MetricsHandler serves /metrics when set.
	MetricsHandler http.Handler
	ReadyChecks    []handler.Check
}

// Handlers are the feature handlers mounted under BasePath.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Profile *profilehandler.ProfileHandler
	Post    *posthandler.PostHandler
	Comment *commenthandler.CommentHandler
}

func NewRouter(opts Options, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		opts.Metrics.Handler(),
		cors.New(corsConfig(opts.AllowedOrigins)),
	)

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/readyz", handler.Ready(opts.ReadyChecks...))
	if opts.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	api := r.Group(opts.BasePath)
	// 認証不要
	// 新規ユーザー登録
	api.POST("/register", h.Auth.Register)
	// ログイン（JWT 発行）
	api.POST("/login", h.Auth.Login)

	// 認証必須のルート
	// → リクエストヘッダーに Bearer トークンが必要になる
	auth := api.Group("/")
	auth.Use(jwtmw.AuthRequired(opts.Verifier))
	{
		auth.GET("/profile/view", h.Profile.View)
		auth.POST("/profile/create", h.Profile.Create)
		auth.PUT("/profile/edit", h.Profile.Edit)

		auth.POST("/post/create", h.Post.Create)
		auth.GET("/post/userposts", h.Post.UserPosts)
		auth.GET("/post/view", h.Post.All)

		auth.POST("/comments/create/:postId", h.Comment.Create)
		auth.GET("/comments/:postId", h.Comment.List)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions, http.MethodHead},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
