package repositories

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database with the same schema the
// server migrates at startup.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Profile{},
		&models.PortfolioItem{},
		&models.MediaAsset{},
		&models.Follow{},
		&models.Session{},
	))
	return db
}

// createProfile inserts a minimal profile row and returns it.
func createProfile(t *testing.T, db *gorm.DB, name, email, role string) *models.Profile {
	t.Helper()

	profile := &models.Profile{Name: name, Email: email, Role: role}
	require.NoError(t, NewPostgresProfileRepository(db).CreateProfile(profile))
	return profile
}
