package repositories

import (
	"time"

	"github.com/medetk/castlink/backend/internal/models"
	"gorm.io/gorm"
)

// SessionRepository defines the interface for session rows backing issued tokens
type SessionRepository interface {
	CreateSession(session *models.Session) error
	GetSessionByID(id string) (*models.Session, error)
	RevokeSession(id string) error
}

// PostgresSessionRepository implements SessionRepository for PostgreSQL
type PostgresSessionRepository struct {
	db *gorm.DB
}

// NewPostgresSessionRepository creates a new PostgresSessionRepository
func NewPostgresSessionRepository(db *gorm.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

// CreateSession creates a session row for a freshly issued token
func (r *PostgresSessionRepository) CreateSession(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetSessionByID retrieves a session row by its token id
func (r *PostgresSessionRepository) GetSessionByID(id string) (*models.Session, error) {
	var session models.Session
	if err := r.db.Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// RevokeSession marks a session revoked. Revoking an already-revoked or
// unknown session is treated as success, so sign-out stays idempotent.
func (r *PostgresSessionRepository) RevokeSession(id string) error {
	now := time.Now()
	return r.db.Model(&models.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", &now).Error
}
