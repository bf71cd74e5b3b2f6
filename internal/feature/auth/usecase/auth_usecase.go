// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"

	"social_backend/internal/feature/auth/domain/entity"
	jwtmw "social_backend/internal/platform/jwt"
	"social_backend/internal/shared/apperr"
	"social_backend/internal/shared/validate"
)

// dummyHash はユーザーが存在しない場合にも比較を行うためのbcryptハッシュ（cost 10）です。
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化し、IDを設定します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// PasswordHasher はパスワードの一方向ハッシュを抽象化します。
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

// TokenIssuer はアクセストークンの発行を抽象化します。
type TokenIssuer interface {
	Issue(claims jwtmw.Claims) (string, error)
}

// RegisterInput は登録リクエストの入力値です。
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *authUsecase {
	return &authUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register は入力を検証し、ハッシュ化されたパスワードで新規ユーザーを登録します。
// 検証に失敗した場合、ユーザーは作成されません。
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, apperr.Validation("", MsgAllFieldsRequired)
	}
	if err := validate.Username(in.Username); err != nil {
		return nil, err
	}
	if err := validate.Email(in.Email); err != nil {
		return nil, err
	}
	if err := validate.Password(in.Password); err != nil {
		return nil, err
	}

	// 事前チェック。最終的な一意性はストアのユニークインデックスが保証する
	_, err := u.users.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, apperr.Conflict("email", MsgUserRegistered)
	case !errors.Is(err, ErrUserNotFound):
		return nil, apperr.Server(msgRegistrationFailure, err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperr.Server(msgRegistrationFailure, err)
	}

	user := &entity.User{
		Username: in.Username,
		Email:    in.Email,
		Password: hashed,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, apperr.Conflict("email", MsgUserRegistered)
		}
		return nil, apperr.Server(msgRegistrationFailure, err)
	}

	return user, nil
}

// Login はユーザーを認証し、成功時にアクセストークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", apperr.Validation("", MsgAllFieldsRequired)
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return "", apperr.Server(msgLoginFailure, err)
	}

	passwordHash := dummyHash
	if user != nil {
		passwordHash = user.Password
	}

	// 常にパスワードを検証する
	matched := u.hasher.Verify(password, passwordHash)

	// ユーザー未検出とパスワード不一致は同じエラーを返す
	if user == nil || !matched {
		return "", apperr.Auth(MsgInvalidCredentials)
	}

	token, err := u.tokens.Issue(jwtmw.Claims{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
	if err != nil {
		return "", apperr.Server(msgLoginFailure, err)
	}

	return token, nil
}
