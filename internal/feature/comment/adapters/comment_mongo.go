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

	"social_backend/internal/feature/comment/domain/entity"
	"social_backend/internal/feature/comment/usecase"
)

// CommentsCollection はコメントを保存するコレクション名です。
const CommentsCollection = "comments"

// commentMongo はCommentRepositoryインターフェースのMongoDB実装です。
type commentMongo struct {
	coll *mongo.Collection
}

var _ usecase.CommentRepository = (*commentMongo)(nil)

// NewCommentMongo は指定されたデータベースのcommentsコレクションを使うcommentMongoを生成します。
func NewCommentMongo(db *mongo.Database) *commentMongo {
	return &commentMongo{coll: db.Collection(CommentsCollection)}
}

// EnsureIndexes は投稿別一覧のための複合インデックスを作成します。
func (r *commentMongo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "post", Value: 1}, {Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("post_created"),
	})
	if err != nil {
		return fmt.Errorf("create comments index: %w", err)
	}
	return nil
}

// Create はコメントを挿入し、IDとタイムスタンプを設定します。
func (r *commentMongo) Create(ctx context.Context, c *entity.Comment) error {
	if c == nil {
		return errors.New("nil comment")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}
	_, err := r.coll.InsertOne(ctx, CommentDocumentFromEntity(c))
	return err
}

// ListByPost は投稿のコメントを古い順に返します。
func (r *commentMongo) ListByPost(ctx context.Context, postID string) ([]entity.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"post": postID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []CommentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	comments := make([]entity.Comment, 0, len(docs))
	for i := range docs {
		comments = append(comments, docs[i].ToEntity())
	}
	return comments, nil
}
