package adapters

import (
	"time"

	"social_backend/internal/feature/comment/domain/entity"
)

// CommentDocument is the MongoDB document for the comments collection.
type CommentDocument struct {
	ID        string    `bson:"_id"`
	PostID    string    `bson:"post"`
	UserID    string    `bson:"user"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// ToEntity converts the document to a domain entity.
func (d *CommentDocument) ToEntity() entity.Comment {
	return entity.Comment{
		ID:        d.ID,
		PostID:    d.PostID,
		UserID:    d.UserID,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// CommentDocumentFromEntity converts a domain entity to a document.
func CommentDocumentFromEntity(c *entity.Comment) *CommentDocument {
	return &CommentDocument{
		ID:        c.ID,
		PostID:    c.PostID,
		UserID:    c.UserID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
