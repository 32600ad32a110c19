package models

import "time"

// Profile visibility values.
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// PrivacySetting holds a user's profile visibility preference.
// A user with no PrivacySetting row is treated as public.
type PrivacySetting struct {
	ID                uint   `gorm:"primaryKey"`
	UserID            uint   `gorm:"uniqueIndex;not null"`
	ProfileVisibility string `gorm:"size:20;not null;default:'public'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
