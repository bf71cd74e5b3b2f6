// Package adapters はcommentフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"social_backend/internal/feature/comment/domain/entity"
	"social_backend/internal/feature/comment/usecase"
)

// commentGorm はCommentRepositoryインターフェースのGORM実装です。
type commentGorm struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentGorm)(nil)

// NewCommentGorm は指定されたgorm.DB接続でcommentGormを生成します。
func NewCommentGorm(db *gorm.DB) *commentGorm {
	return &commentGorm{db: db}
}

// Create はコメントを保存し、IDを採番します。
func (r *commentGorm) Create(ctx context.Context, c *entity.Comment) error {
	if c == nil {
		return errors.New("nil comment")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

// ListByPost は投稿のコメントを古い順に返します。
func (r *commentGorm) ListByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
