package profile

import (
	"errors"

	"pulsefeed/backend/internal/models"

	"gorm.io/gorm"
)

// GormStore implements Store against the application database.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps a gorm handle in a read-only profile store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindProfileByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) FindPrivacySetting(userID uint) (*models.PrivacySetting, error) {
	var setting models.PrivacySetting
	if err := s.db.Where("user_id = ?", userID).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (s *GormStore) HasAcceptedFollow(followerID, followingID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ? AND status = ?", followerID, followingID, models.StatusAccepted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *GormStore) ListContentByAuthor(userID uint) ([]models.Post, error) {
	var content []models.Post
	err := s.db.
		Preload("Media", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&content).Error
	if err != nil {
		return nil, err
	}
	return content, nil
}
