// Package usecase はprofileフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"time"

	"social_backend/internal/feature/auth/domain/entity"
	authusecase "social_backend/internal/feature/auth/usecase"
	"social_backend/internal/shared/apperr"
	"social_backend/internal/shared/sanitize"
	"social_backend/internal/shared/validate"
)

// MsgAllFieldsRequired はプロフィール作成時の必須項目欠落メッセージです。
const MsgAllFieldsRequired = "All fields are required"

const msgProfileFailure = "failed to update profile"

// UserRepository はプロフィールの読み書きに必要な永続化操作を定義します。
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id string, p entity.ProfileUpdate) (*entity.User, error)
}

// ProfileInput はプロフィールの入力値です。nilは「未指定」を表します。
type ProfileInput struct {
	FirstName *string
	LastName  *string
	DOB       *string
}

// profileUsecase はプロフィールのビジネスロジックを実装します。
type profileUsecase struct {
	users UserRepository
	now   func() time.Time
}

// NewProfileUsecase はprofileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(users UserRepository) *profileUsecase {
	return &profileUsecase{users: users, now: time.Now}
}

// View は呼び出し元ユーザーを取得します。
func (u *profileUsecase) View(ctx context.Context, userID string) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err)
	}
	return user, nil
}

// Create は初回のプロフィールを設定します。3項目すべてが必須です。
func (u *profileUsecase) Create(ctx context.Context, userID string, in ProfileInput) (*entity.User, error) {
	first := valueOf(sanitize.Optional(in.FirstName))
	last := valueOf(sanitize.Optional(in.LastName))
	dob := valueOf(sanitize.Optional(in.DOB))
	if first == "" || last == "" || dob == "" {
		return nil, apperr.Validation("", MsgAllFieldsRequired)
	}

	now := u.now()
	if err := validate.FirstName(first); err != nil {
		return nil, err
	}
	if err := validate.LastName(last); err != nil {
		return nil, err
	}
	birth, err := validate.DateOfBirth(dob, now)
	if err != nil {
		return nil, err
	}

	return u.update(ctx, userID, entity.ProfileUpdate{
		FirstName: &first,
		LastName:  &last,
		DOB:       &birth,
		UpdatedAt: now,
	})
}

// Edit は指定された項目のみを更新します。
// サニタイズ後に空になる項目は未指定として扱い、検証も適用もしません。
func (u *profileUsecase) Edit(ctx context.Context, userID string, in ProfileInput) (*entity.User, error) {
	now := u.now()
	update := entity.ProfileUpdate{UpdatedAt: now}

	if first := valueOf(sanitize.Optional(in.FirstName)); first != "" {
		if err := validate.FirstName(first); err != nil {
			return nil, err
		}
		update.FirstName = &first
	}
	if last := valueOf(sanitize.Optional(in.LastName)); last != "" {
		if err := validate.LastName(last); err != nil {
			return nil, err
		}
		update.LastName = &last
	}
	if dob := valueOf(sanitize.Optional(in.DOB)); dob != "" {
		birth, err := validate.DateOfBirth(dob, now)
		if err != nil {
			return nil, err
		}
		update.DOB = &birth
	}

	return u.update(ctx, userID, update)
}

func (u *profileUsecase) update(ctx context.Context, userID string, p entity.ProfileUpdate) (*entity.User, error) {
	user, err := u.users.UpdateProfile(ctx, userID, p)
	if err != nil {
		return nil, mapUserErr(err)
	}
	return user, nil
}

func mapUserErr(err error) error {
	if errors.Is(err, authusecase.ErrUserNotFound) {
		return apperr.NotFound(authusecase.MsgUserNotFound)
	}
	return apperr.Server(msgProfileFailure, err)
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
