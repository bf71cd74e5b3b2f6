package adapters

import (
	"time"

	"social_backend/internal/feature/post/domain/entity"
)

// PostDocument is the MongoDB document for the posts collection.
type PostDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user"`
	Title     string    `bson:"title"`
	Content   string    `bson:"content"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// ToEntity converts the document to a domain entity.
func (d *PostDocument) ToEntity() entity.Post {
	return entity.Post{
		ID:        d.ID,
		UserID:    d.UserID,
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// PostDocumentFromEntity converts a domain entity to a document.
func PostDocumentFromEntity(p *entity.Post) *PostDocument {
	return &PostDocument{
		ID:        p.ID,
		UserID:    p.UserID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
