// Package entity defines the domain entities for the comment feature.
package entity

import "time"

// Comment is a reply to a post.
type Comment struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PostID    string    `gorm:"size:36;not null;index:idx_comments_post_created,priority:1" json:"post"`
	UserID    string    `gorm:"size:36;not null" json:"user"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_comments_post_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
