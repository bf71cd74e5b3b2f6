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

	"social_backend/internal/feature/post/domain/entity"
	"social_backend/internal/feature/post/usecase"
)

// PostsCollection は投稿を保存するコレクション名です。
const PostsCollection = "posts"

// postMongo はPostRepositoryインターフェースのMongoDB実装です。
type postMongo struct {
	coll *mongo.Collection
}

var _ usecase.PostRepository = (*postMongo)(nil)

// NewPostMongo は指定されたデータベースのpostsコレクションを使うpostMongoを生成します。
func NewPostMongo(db *mongo.Database) *postMongo {
	return &postMongo{coll: db.Collection(PostsCollection)}
}

// EnsureIndexes は所有者別一覧のための複合インデックスを作成します。
func (r *postMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("user_created"),
	})
	if err != nil {
		return fmt.Errorf("create posts index: %w", err)
	}
	return nil
}

// Create は投稿を挿入し、IDとタイムスタンプを設定します。
func (r *postMongo) Create(ctx context.Context, p *entity.Post) error {
	if p == nil {
		return errors.New("nil post")
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	_, err := r.coll.InsertOne(ctx, PostDocumentFromEntity(p))
	return err
}

// FindByID はIDで投稿を取得します。
func (r *postMongo) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	var doc PostDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, usecase.ErrPostNotFound
		}
		return nil, err
	}
	p := doc.ToEntity()
	return &p, nil
}

// ListByUser はユーザーの投稿を新しい順に返します。
func (r *postMongo) ListByUser(ctx context.Context, userID string) ([]entity.Post, error) {
	return r.find(ctx, bson.M{"user": userID})
}

// ListAll はすべての投稿を新しい順に返します。
func (r *postMongo) ListAll(ctx context.Context) ([]entity.Post, error) {
	return r.find(ctx, bson.M{})
}

func (r *postMongo) find(ctx context.Context, filter bson.M) ([]entity.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []PostDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	posts := make([]entity.Post, 0, len(docs))
	for i := range docs {
		posts = append(posts, docs[i].ToEntity())
	}
	return posts, nil
}
