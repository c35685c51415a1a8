package models

import (
	"time"
)

// Group is a topic posts can be tagged with. The slug is the stable URL key.
type Group struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Posts       []Post    `gorm:"foreignKey:GroupID" json:"posts,omitempty"`
}
