package models

import "time"

// FollowStatus defines the state of a follow edge between two users.
type FollowStatus string

const (
	// StatusPending means a follow request was sent to a private account
	// and has not yet been accepted. It grants no content visibility.
	StatusPending FollowStatus = "pending"

	// StatusAccepted means the follow is active. Only accepted edges
	// count for profile visibility.
	StatusAccepted FollowStatus = "accepted"
)

// Follow represents a directed follow edge (follower -> following).
// The primary key is a composite of (FollowerID, FollowingID) to ensure uniqueness.
type Follow struct {
	FollowerID  uint         `gorm:"primaryKey"`
	FollowingID uint         `gorm:"primaryKey"`
	Status      FollowStatus `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Follower  User `gorm:"foreignKey:FollowerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Following User `gorm:"foreignKey:FollowingID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
