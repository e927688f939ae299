package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/medetk/castlink/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSessionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresSessionRepository(db)

	owner := createProfile(t, db, "Owner", "owner@example.com", "actor")

	session := &models.Session{
		ID:        uuid.NewString(),
		ProfileID: owner.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.CreateSession(session))

	t.Run("fresh session is active", func(t *testing.T) {
		got, err := repo.GetSessionByID(session.ID)
		require.NoError(t, err)
		assert.True(t, got.Active(time.Now()))
	})

	t.Run("revoked session is inactive", func(t *testing.T) {
		require.NoError(t, repo.RevokeSession(session.ID))

		got, err := repo.GetSessionByID(session.ID)
		require.NoError(t, err)
		assert.False(t, got.Active(time.Now()))
	})

	t.Run("revoking again is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.RevokeSession(session.ID))
		assert.NoError(t, repo.RevokeSession(uuid.NewString()))
	})

	t.Run("unknown session id is not found", func(t *testing.T) {
		_, err := repo.GetSessionByID(uuid.NewString())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
