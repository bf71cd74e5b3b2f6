package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"social_backend/internal/feature/auth/domain/entity"
	"social_backend/internal/feature/auth/usecase"
	profileusecase "social_backend/internal/feature/profile/usecase"
)

// UsersCollection はユーザーを保存するコレクション名です。
const UsersCollection = "users"

// userMongo はUserRepositoryインターフェースのMongoDB実装です。
// メールアドレスの一意性はユニークインデックスで保証します。
type userMongo struct {
	coll *mongo.Collection
}

// userMongoがUserRepositoryを実装していることをコンパイル時に検証します。
var (
	_ usecase.UserRepository        = (*userMongo)(nil)
	_ profileusecase.UserRepository = (*userMongo)(nil)
)

// NewUserMongo は指定されたデータベースのusersコレクションを使うuserMongoを生成します。
func NewUserMongo(db *mongo.Database) *userMongo {
	return &userMongo{coll: db.Collection(UsersCollection)}
}

// EnsureIndexes はemailのユニークインデックスを作成します。起動時に一度呼び出します。
func (r *userMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}
	return nil
}

// Create はユーザーを挿入し、IDとタイムスタンプを設定します。
// 同じメールアドレスのユーザーが既に存在する場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMongo) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("nil user")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	if _, err := r.coll.InsertOne(ctx, UserDocumentFromEntity(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByEmail はメールアドレスでユーザーを取得します。
func (r *userMongo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByID はIDでユーザーを取得します。
func (r *userMongo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// UpdateProfile は指定されたプロフィール項目のみを$setし、更新後のドキュメントを返します。
func (r *userMongo) UpdateProfile(ctx context.Context, id string, p entity.ProfileUpdate) (*entity.User, error) {
	var doc UserDocument
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": profileSet(p)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return doc.ToEntity(), nil
}

func (r *userMongo) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc UserDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return doc.ToEntity(), nil
}
