// Package usecase はpostフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"time"

	"social_backend/internal/feature/post/domain/entity"
	"social_backend/internal/shared/apperr"
	"social_backend/internal/shared/sanitize"
)

// ErrPostNotFound は投稿が存在しない場合にリポジトリが返すエラーです。
var ErrPostNotFound = errors.New("post not found")

// クライアントに返すメッセージ。
const (
	MsgTitleContentRequired = "Title and content are required"
	MsgInvalidPost          = "Invalid post"
)

const msgListFailure = "Unable to fetch posts"

// PostRepository は投稿の永続化操作を定義します。
// 一覧はいずれもCreatedAtの降順（新しい順）で返します。
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	FindByID(ctx context.Context, id string) (*entity.Post, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Post, error)
	ListAll(ctx context.Context) ([]entity.Post, error)
}

// postUsecase は投稿のビジネスロジックを実装します。
type postUsecase struct {
	posts PostRepository
	now   func() time.Time
}

// NewPostUsecase はpostUsecaseの新しいインスタンスを生成します。
func NewPostUsecase(posts PostRepository) *postUsecase {
	return &postUsecase{posts: posts, now: time.Now}
}

// Create はタイトルと本文をサニタイズし、呼び出し元を所有者として投稿を作成します。
// 保存に失敗した場合は403 "Invalid post"を返します。
func (u *postUsecase) Create(ctx context.Context, userID, title, content string) (*entity.Post, error) {
	title = sanitize.String(title)
	content = sanitize.String(content)
	if title == "" || content == "" {
		return nil, apperr.Validation("", MsgTitleContentRequired)
	}

	now := u.now().UTC()
	post := &entity.Post{
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.posts.Create(ctx, post); err != nil {
		return nil, apperr.Forbidden(MsgInvalidPost, err)
	}
	return post, nil
}

// UserPosts は呼び出し元の投稿を新しい順に返します。
func (u *postUsecase) UserPosts(ctx context.Context, userID string) ([]entity.Post, error) {
	posts, err := u.posts.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Server(msgListFailure, err)
	}
	return nonNil(posts), nil
}

// All はすべての投稿を新しい順に返します。
func (u *postUsecase) All(ctx context.Context) ([]entity.Post, error) {
	posts, err := u.posts.ListAll(ctx)
	if err != nil {
		return nil, apperr.Server(msgListFailure, err)
	}
	return nonNil(posts), nil
}

// nonNil は空の一覧をJSONの[]として返すためにnilを空スライスに置き換えます。
func nonNil(posts []entity.Post) []entity.Post {
	if posts == nil {
		return []entity.Post{}
	}
	return posts
}
