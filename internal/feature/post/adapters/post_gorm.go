// Package adapters はpostフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"social_backend/internal/feature/post/domain/entity"
	"social_backend/internal/feature/post/usecase"
)

// postGorm はPostRepositoryインターフェースのGORM実装です。
type postGorm struct {
	db *gorm.DB
}

var _ usecase.PostRepository = (*postGorm)(nil)

// NewPostGorm は指定されたgorm.DB接続でpostGormを生成します。
func NewPostGorm(db *gorm.DB) *postGorm {
	return &postGorm{db: db}
}

// Create は投稿を保存し、IDを採番します。
func (r *postGorm) Create(ctx context.Context, p *entity.Post) error {
	if p == nil {
		return errors.New("nil post")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID はIDで投稿を取得します。存在しない場合はusecase.ErrPostNotFoundを返します。
func (r *postGorm) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	if id == "" {
		return nil, usecase.ErrPostNotFound
	}
	var p entity.Post
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByUser はユーザーの投稿を新しい順に返します。
func (r *postGorm) ListByUser(ctx context.Context, userID string) ([]entity.Post, error) {
	var posts []entity.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

// ListAll はすべての投稿を新しい順に返します。
func (r *postGorm) ListAll(ctx context.Context) ([]entity.Post, error) {
	var posts []entity.Post
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&posts).Error
	return posts, err
}
