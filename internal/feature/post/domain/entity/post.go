// Package entity defines the domain entities for the post feature.
package entity

import "time"

// Post is a piece of content owned by a user.
type Post struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;not null;index:idx_posts_user_created,priority:1" json:"user"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_posts_user_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
