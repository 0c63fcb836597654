package models

import (
	"time"

	"gorm.io/gorm"
)

// Follow represents a follower relationship.
// The combination of FollowerID and FollowingID must be unique.
type Follow struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	FollowerID  uint           `gorm:"not null;uniqueIndex:idx_follower_following" json:"follower_id"`
	FollowingID uint           `gorm:"not null;uniqueIndex:idx_follower_following" json:"following_id"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Follower  User `gorm:"foreignKey:FollowerID" json:"follower"`
	Following User `gorm:"foreignKey:FollowingID" json:"following"`
}
