package models

import "gorm.io/gorm"

// User represents a user profile in the system.
// Username is the public lookup key for profile pages.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:50;not null;default:'user';index"`

	DisplayName string `gorm:"size:255"`
	Bio         string `gorm:"size:1024"`
	Website     string `gorm:"size:255"`
	Location    string `gorm:"size:255"`
	AvatarURL   string `gorm:"size:512"`

	// Denormalized counters, maintained by the follow handlers.
	FollowerCount  int64 `gorm:"not null;default:0"`
	FollowingCount int64 `gorm:"not null;default:0"`
}
