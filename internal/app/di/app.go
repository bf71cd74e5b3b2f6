package di

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"social_backend/internal/app/router"
	authhandler "social_backend/internal/feature/auth/transport/handler"
	authusecase "social_backend/internal/feature/auth/usecase"
	commenthandler "social_backend/internal/feature/comment/transport/handler"
	commentusecase "social_backend/internal/feature/comment/usecase"
	posthandler "social_backend/internal/feature/post/transport/handler"
	postusecase "social_backend/internal/feature/post/usecase"
	profilehandler "social_backend/internal/feature/profile/transport/handler"
	profileusecase "social_backend/internal/feature/profile/usecase"
	"social_backend/internal/platform/config"
	"social_backend/internal/platform/http/handler"
	"social_backend/internal/platform/http/middleware"
	jwtmw "social_backend/internal/platform/jwt"
	"social_backend/internal/platform/security"
)

// NewEngine wires usecases and handlers onto the stores and returns the router.
// rdb may be nil. registry receives the HTTP metrics and backs /metrics.
func NewEngine(cfg config.Config, stores *Stores, rdb *redis.Client, registry *prometheus.Registry) (*gin.Engine, error) {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics, err := middleware.NewHTTPMetrics(middleware.HTTPMetricsOptions{Registerer: registry})
	if err != nil {
		return nil, err
	}

	// Repository
	posts := NewPostRepository(rdb, cfg.CacheTTL, stores.Posts)

	// Usecase
	tokens := jwtmw.NewHMACTokenService(cfg.AccessTokenSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(stores.Users, security.NewBcryptHasher(), tokens)
	profileUC := profileusecase.NewProfileUsecase(stores.Users)
	postUC := postusecase.NewPostUsecase(posts)
	commentUC := commentusecase.NewCommentUsecase(stores.Comments, posts)

	checks := []handler.Check{{Name: "database", Ping: stores.Ping}}
	if rdb != nil {
		checks = append(checks, handler.Check{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}})
	}

	// ルータ生成
	return router.NewRouter(router.Options{
		BasePath:       cfg.APIBasePath,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Verifier:       tokens,
		Metrics:        metrics,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		ReadyChecks:    checks,
	}, router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC),
		Profile: profilehandler.NewProfileHandler(profileUC),
		Post:    posthandler.NewPostHandler(postUC),
		Comment: commenthandler.NewCommentHandler(commentUC),
	}), nil
}
