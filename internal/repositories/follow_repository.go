package repositories

import (
	"github.com/medetk/castlink/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow-graph operations
type FollowRepository interface {
	CreateFollow(follow *models.Follow) error
	DeleteFollow(followerID, followingID uint) error
	IsFollowing(followerID, followingID uint) (bool, error)
	GetFollowers(profileID uint) ([]models.ProfileSummary, error)
	GetFollowing(profileID uint) ([]models.ProfileSummary, error)
	GetFollowersCount(profileID uint) (int64, error)
	GetFollowingCount(profileID uint) (int64, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateFollow inserts one edge. The composite unique index on
// (follower_id, following_id) rejects a second edge for the same pair.
func (r *PostgresFollowRepository) CreateFollow(follow *models.Follow) error {
	return r.db.Create(follow).Error
}

// DeleteFollow removes the edge matching both ids exactly. Deleting an edge
// that does not exist is treated as success.
func (r *PostgresFollowRepository) DeleteFollow(followerID, followingID uint) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetFollowers returns the profiles following profileID, projected down to
// the summary fields only.
func (r *PostgresFollowRepository) GetFollowers(profileID uint) ([]models.ProfileSummary, error) {
	var summaries []models.ProfileSummary
	err := r.db.Model(&models.Profile{}).
		Select("id", "name", "role", "avatar_url").
		Where("id IN (?)",
			r.db.Model(&models.Follow{}).Select("follower_id").Where("following_id = ?", profileID),
		).
		Find(&summaries).Error
	return summaries, err
}

// GetFollowing returns the profiles profileID follows, with the same projection.
func (r *PostgresFollowRepository) GetFollowing(profileID uint) ([]models.ProfileSummary, error) {
	var summaries []models.ProfileSummary
	err := r.db.Model(&models.Profile{}).
		Select("id", "name", "role", "avatar_url").
		Where("id IN (?)",
			r.db.Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", profileID),
		).
		Find(&summaries).Error
	return summaries, err
}

func (r *PostgresFollowRepository) GetFollowersCount(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("following_id = ?", profileID).Count(&count).Error
	return count, err
}

func (r *PostgresFollowRepository) GetFollowingCount(profileID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", profileID).Count(&count).Error
	return count, err
}
