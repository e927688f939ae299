package repositories

import (
	"github.com/medetk/castlink/backend/internal/models"
	"gorm.io/gorm"
)

// PortfolioRepository defines the interface for portfolio data operations
type PortfolioRepository interface {
	AddItem(item *models.PortfolioItem) error
	GetPortfolio(profileID uint) ([]models.PortfolioItem, error)
	GetItemByID(id uint) (*models.PortfolioItem, error)
	DeleteItem(id uint) error
}

// PostgresPortfolioRepository implements PortfolioRepository for PostgreSQL
type PostgresPortfolioRepository struct {
	db *gorm.DB
}

// NewPostgresPortfolioRepository creates a new PostgresPortfolioRepository
func NewPostgresPortfolioRepository(db *gorm.DB) *PostgresPortfolioRepository {
	return &PostgresPortfolioRepository{db: db}
}

// AddItem inserts one portfolio row. The owning profile id is trusted to the
// caller; no existence check is made here.
func (r *PostgresPortfolioRepository) AddItem(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

// GetPortfolio returns a profile's portfolio in insertion order. An empty
// portfolio is an empty slice, not an error.
func (r *PostgresPortfolioRepository) GetPortfolio(profileID uint) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	if err := r.db.Where("profile_id = ?", profileID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemByID retrieves a single portfolio row
func (r *PostgresPortfolioRepository) GetItemByID(id uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem deletes a portfolio row by id
func (r *PostgresPortfolioRepository) DeleteItem(id uint) error {
	return r.db.Delete(&models.PortfolioItem{}, id).Error
}
