package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a photo post. ImageLink doubles as the lookup key for the
// like and comment endpoints, mirroring how clients address posts.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	User      User   `gorm:"foreignKey:UserID" json:"user"`
	ImageLink string `gorm:"uniqueIndex;not null" json:"image_link"`
	Caption   string `gorm:"type:text" json:"caption"`
	Likes     int    `gorm:"not null;default:0" json:"likes"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int            `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
