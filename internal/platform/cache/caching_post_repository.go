// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"social_backend/internal/feature/post/domain/entity"
	"social_backend/internal/feature/post/usecase"
)

// CachingPostRepository decorates a PostRepository with Redis caching of
// the post listings. Single-post lookups always go to the inner repository.
type CachingPostRepository struct {
	inner     usecase.PostRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.PostRepository = (*CachingPostRepository)(nil)

// NewCachingPostRepository decorates a PostRepository with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses "posts".
// A nil rdb disables caching.
func NewCachingPostRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PostRepository, namespace string) *CachingPostRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "posts"
	}
	return &CachingPostRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create は投稿を保存し、その投稿を含む一覧のキャッシュを削除します。
func (c *CachingPostRepository) Create(ctx context.Context, p *entity.Post) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// 削除に失敗しても古い一覧はTTLで失効する
	_ = c.rdb.Del(ctx, c.allKey(), c.userKey(p.UserID)).Err()
	return nil
}

// FindByID はキャッシュせず常にストアを参照します。
func (c *CachingPostRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	return c.inner.FindByID(ctx, id)
}

// ListByUser はユーザーの投稿一覧をキャッシュ優先で返します。
func (c *CachingPostRepository) ListByUser(ctx context.Context, userID string) ([]entity.Post, error) {
	return c.cached(ctx, c.userKey(userID), func() ([]entity.Post, error) {
		return c.inner.ListByUser(ctx, userID)
	})
}

// ListAll はすべての投稿一覧をキャッシュ優先で返します。
func (c *CachingPostRepository) ListAll(ctx context.Context) ([]entity.Post, error) {
	return c.cached(ctx, c.allKey(), func() ([]entity.Post, error) {
		return c.inner.ListAll(ctx)
	})
}

func (c *CachingPostRepository) cached(ctx context.Context, key string, load func() ([]entity.Post, error)) ([]entity.Post, error) {
	if c.rdb == nil {
		return load()
	}

	// キャッシュヒットならストアを呼ばない
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Post
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたエントリは捨てて読み直す
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	// 書き込み失敗は無視する
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingPostRepository) allKey() string {
	return c.namespace + ":all"
}

func (c *CachingPostRepository) userKey(userID string) string {
	return c.namespace + ":user:" + safe(userID)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
