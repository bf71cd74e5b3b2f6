// Package usecase はcommentフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"time"

	"social_backend/internal/feature/comment/domain/entity"
	postentity "social_backend/internal/feature/post/domain/entity"
	postusecase "social_backend/internal/feature/post/usecase"
	"social_backend/internal/shared/apperr"
	"social_backend/internal/shared/sanitize"
)

// クライアントに返すメッセージ。
const (
	MsgContentRequired = "Content is required"
	MsgPostNotFound    = "Post not found"
	MsgCreateFailure   = "Unable to create comment"
	MsgListFailure     = "Unable to find comments"
)

// CommentRepository はコメントの永続化操作を定義します。
type CommentRepository interface {
	Create(ctx context.Context, c *entity.Comment) error
	// ListByPost は投稿のコメントを古い順に返します。
	ListByPost(ctx context.Context, postID string) ([]entity.Comment, error)
}

// PostFinder はコメント対象の投稿の存在確認に使います。
// 見つからない場合はpostusecase.ErrPostNotFoundを返す必要があります。
type PostFinder interface {
	FindByID(ctx context.Context, id string) (*postentity.Post, error)
}

// commentUsecase はコメントのビジネスロジックを実装します。
type commentUsecase struct {
	comments CommentRepository
	posts    PostFinder
	now      func() time.Time
}

// NewCommentUsecase はcommentUsecaseの新しいインスタンスを生成します。
func NewCommentUsecase(comments CommentRepository, posts PostFinder) *commentUsecase {
	return &commentUsecase{comments: comments, posts: posts, now: time.Now}
}

// Create は本文をサニタイズし、存在する投稿にコメントを追加します。
func (u *commentUsecase) Create(ctx context.Context, userID, postID, content string) (*entity.Comment, error) {
	content = sanitize.String(content)
	if content == "" {
		return nil, apperr.Validation("content", MsgContentRequired)
	}
	if err := u.requirePost(ctx, postID); err != nil {
		return nil, err
	}

	now := u.now().UTC()
	comment := &entity.Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, apperr.Server(MsgCreateFailure, err)
	}
	return comment, nil
}

// List は投稿のコメントを古い順に返します。
func (u *commentUsecase) List(ctx context.Context, postID string) ([]entity.Comment, error) {
	comments, err := u.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperr.Server(MsgListFailure, err)
	}
	if comments == nil {
		comments = []entity.Comment{}
	}
	return comments, nil
}

func (u *commentUsecase) requirePost(ctx context.Context, postID string) error {
	if postID == "" {
		return apperr.NotFound(MsgPostNotFound)
	}
	if _, err := u.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, postusecase.ErrPostNotFound) {
			return apperr.NotFound(MsgPostNotFound)
		}
		return apperr.Server(MsgCreateFailure, err)
	}
	return nil
}
