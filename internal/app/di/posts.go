package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	postusecase "social_backend/internal/feature/post/usecase"
	"social_backend/internal/platform/cache"
)

// NewPostRepository wraps the store with the Redis listing cache.
// If Redis is unavailable, the store is returned unwrapped.
func NewPostRepository(rdb *redis.Client, ttl time.Duration, store postusecase.PostRepository) postusecase.PostRepository {
	if rdb == nil {
		return store
	}
	return cache.NewCachingPostRepository(rdb, ttl, store, "posts")
}
