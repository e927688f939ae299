package repositories

import (
	"github.com/medetk/castlink/backend/internal/models"
	"gorm.io/gorm"
)

// ProfileRepository defines the interface for profile data operations
type ProfileRepository interface {
	CreateProfile(profile *models.Profile) error
	GetProfileByID(id uint) (*models.Profile, error)
	GetProfileByEmail(email string) (*models.Profile, error)
	GetProfileByFirebaseUID(firebaseUID string) (*models.Profile, error)
	UpdateProfile(id uint, changes map[string]interface{}) (*models.Profile, error)
	SaveProfile(profile *models.Profile) error
	SearchProfiles(query, role string) ([]models.Profile, error)
	IncrementFollowersCount(id uint) error
	DecrementFollowersCount(id uint) error
	IncrementFollowingCount(id uint) error
	DecrementFollowingCount(id uint) error
}

// PostgresProfileRepository implements ProfileRepository for PostgreSQL
type PostgresProfileRepository struct {
	db *gorm.DB
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository
func NewPostgresProfileRepository(db *gorm.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// CreateProfile creates a new profile row
func (r *PostgresProfileRepository) CreateProfile(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// GetProfileByID retrieves exactly one profile by primary key. Zero rows is
// gorm.ErrRecordNotFound, never a default profile.
func (r *PostgresProfileRepository) GetProfileByID(id uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByEmail retrieves a profile by its contact email
func (r *PostgresProfileRepository) GetProfileByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("email = ?", email).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetProfileByFirebaseUID retrieves a profile linked to a Firebase account
func (r *PostgresProfileRepository) GetProfileByFirebaseUID(firebaseUID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial-field patch and returns the fresh row.
// Only the columns present in changes are written; last write wins.
func (r *PostgresProfileRepository) UpdateProfile(id uint, changes map[string]interface{}) (*models.Profile, error) {
	if len(changes) > 0 {
		res := r.db.Model(&models.Profile{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetProfileByID(id)
}

// SaveProfile writes a full profile row back
func (r *PostgresProfileRepository) SaveProfile(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

// SearchProfiles searches profiles by name or location, optionally scoped to a role
func (r *PostgresProfileRepository) SearchProfiles(query, role string) ([]models.Profile, error) {
	var profiles []models.Profile
	q := r.db.Where("LOWER(name) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?)", "%"+query+"%", "%"+query+"%")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if err := q.Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *PostgresProfileRepository) IncrementFollowersCount(id uint) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).
		UpdateColumn("followers_count", gorm.Expr("followers_count + 1")).Error
}

func (r *PostgresProfileRepository) DecrementFollowersCount(id uint) error {
	return r.db.Model(&models.Profile{}).Where("id = ? AND followers_count > 0", id).
		UpdateColumn("followers_count", gorm.Expr("followers_count - 1")).Error
}

func (r *PostgresProfileRepository) IncrementFollowingCount(id uint) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).
		UpdateColumn("following_count", gorm.Expr("following_count + 1")).Error
}

func (r *PostgresProfileRepository) DecrementFollowingCount(id uint) error {
	return r.db.Model(&models.Profile{}).Where("id = ? AND following_count > 0", id).
		UpdateColumn("following_count", gorm.Expr("following_count - 1")).Error
}
