// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"social_backend/internal/feature/auth/domain/entity"
	"social_backend/internal/feature/auth/usecase"
	profileusecase "social_backend/internal/feature/profile/usecase"
)

// userGorm はUserRepositoryインターフェースのGORM実装です。
// PostgreSQLとSQLiteの両方で動作します。
type userGorm struct {
	db *gorm.DB
}

// userGormがUserRepositoryを実装していることをコンパイル時に検証します。
var (
	_ usecase.UserRepository        = (*userGorm)(nil)
	_ profileusecase.UserRepository = (*userGorm)(nil)
)

// NewUserGorm は指定されたgorm.DB接続でuserGormの新しいインスタンスを生成します。
// gorm.DBはTranslateErrorを有効にして開いておく必要があります。
func NewUserGorm(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create はユーザーをデータベースに追加し、IDを採番します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("nil user")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// ユニークインデックス違反
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

// FindByID はIDでユーザーを取得します。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userGorm) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

// UpdateProfile は指定されたプロフィール項目のみを更新し、更新後のユーザーを返します。
func (r *userGorm) UpdateProfile(ctx context.Context, id string, p entity.ProfileUpdate) (*entity.User, error) {
	updates := map[string]any{"updated_at": p.UpdatedAt}
	if p.FirstName != nil {
		updates["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		updates["last_name"] = *p.LastName
	}
	if p.DOB != nil {
		updates["dob"] = *p.DOB
	}

	var out *entity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.User{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrUserNotFound
		}
		var u entity.User
		if err := tx.Where("id = ?", id).First(&u).Error; err != nil {
			return err
		}
		out = &u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *userGorm) first(ctx context.Context, query string, arg string) (*entity.User, error) {
	if arg == "" {
		return nil, usecase.ErrUserNotFound
	}
	var u entity.User
	if err := r.db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
