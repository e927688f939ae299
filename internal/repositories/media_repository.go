package repositories

import (
	"github.com/medetk/castlink/backend/internal/models"
	"gorm.io/gorm"
)

// MediaRepository defines the interface for media metadata operations
type MediaRepository interface {
	CreateMedia(asset *models.MediaAsset) error
	GetMedia(profileID uint) ([]models.MediaAsset, error)
	GetMediaByID(id uint) (*models.MediaAsset, error)
	DeleteMedia(id uint) error
}

// PostgresMediaRepository implements MediaRepository for PostgreSQL
type PostgresMediaRepository struct {
	db *gorm.DB
}

// NewPostgresMediaRepository creates a new PostgresMediaRepository
func NewPostgresMediaRepository(db *gorm.DB) *PostgresMediaRepository {
	return &PostgresMediaRepository{db: db}
}

// CreateMedia inserts the metadata row for an already-uploaded binary
func (r *PostgresMediaRepository) CreateMedia(asset *models.MediaAsset) error {
	return r.db.Create(asset).Error
}

// GetMedia returns all media rows owned by a profile, newest first
func (r *PostgresMediaRepository) GetMedia(profileID uint) ([]models.MediaAsset, error) {
	var assets []models.MediaAsset
	if err := r.db.Where("profile_id = ?", profileID).Order("id DESC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// GetMediaByID retrieves a single media row
func (r *PostgresMediaRepository) GetMediaByID(id uint) (*models.MediaAsset, error) {
	var asset models.MediaAsset
	if err := r.db.First(&asset, id).Error; err != nil {
		return nil, err
	}
	return &asset, nil
}

// DeleteMedia deletes a media row by id
func (r *PostgresMediaRepository) DeleteMedia(id uint) error {
	return r.db.Delete(&models.MediaAsset{}, id).Error
}
