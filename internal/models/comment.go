package models

import (
	"time"
)

// Comment is a reader's reply on a post. Comments are immutable once
// created; there are no update or delete operations.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"not null" json:"text"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	PostID    uint      `gorm:"not null" json:"post_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Post      Post      `gorm:"foreignKey:PostID" json:"post,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
