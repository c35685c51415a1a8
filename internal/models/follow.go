package models

import (
	"time"
)

// Follow is a directed edge from a follower to an author. The composite
// unique index guarantees at most one edge per (user, author) pair; the
// self-follow guard lives in the follow service, not the store.
type Follow struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"user_id"`
	AuthorID  uint      `gorm:"not null;uniqueIndex:idx_follow_user_author" json:"author_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}
