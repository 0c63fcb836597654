// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents an account in the Fotogram application.
type User struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	Username         string         `gorm:"uniqueIndex;not null" json:"username"`
	Email            string         `gorm:"uniqueIndex;not null" json:"email"`
	Name             string         `gorm:"not null" json:"name"`
	Password         string         `gorm:"not null" json:"-"`
	Bio              string         `json:"bio,omitempty"`
	Link             string         `json:"link,omitempty"`
	ProfileImageLink string         `json:"profile_image_link,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}
