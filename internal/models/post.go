package models

import "gorm.io/gorm"

// Post is a single piece of user content. A post with attached media is
// shown in the profile's media grid; a post without media is a text thread.
type Post struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Text   string `gorm:"size:4096"`

	Media []Media `gorm:"foreignKey:PostID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// Engagement counters, carried through to responses unmodified.
	LikeCount    int64 `gorm:"not null;default:0"`
	CommentCount int64 `gorm:"not null;default:0"`
	ShareCount   int64 `gorm:"not null;default:0"`
	SaveCount    int64 `gorm:"not null;default:0"`

	Author User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Media is one attachment of a post, ordered by Position.
type Media struct {
	ID       uint   `gorm:"primaryKey"`
	PostID   uint   `gorm:"index;not null"`
	URL      string `gorm:"size:512;not null"`
	Type     string `gorm:"size:50;not null;default:'image'"`
	Position int    `gorm:"not null;default:0"`
}

// HasMedia reports whether the post carries at least one media attachment.
func (p *Post) HasMedia() bool {
	return len(p.Media) > 0
}
