package models

import (
	"time"
)

// Post is a publication by an author. Group and image are optional; a
// group being deleted must never take its posts with it, which is why
// GroupID is a plain nullable reference without cascade semantics.
type Post struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Text     string `gorm:"not null" json:"text"`
	AuthorID uint   `gorm:"not null" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`
	GroupID  *uint  `json:"group_id,omitempty"`
	Group    *Group `gorm:"foreignKey:GroupID" json:"group,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"-" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
