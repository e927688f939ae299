package repositories

import (
	"testing"

	"github.com/medetk/castlink/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMediaRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresMediaRepository(db)

	owner := createProfile(t, db, "Owner", "owner@example.com", "actor")

	t.Run("listing with no media is empty", func(t *testing.T) {
		assets, err := repo.GetMedia(owner.ID)
		require.NoError(t, err)
		assert.Empty(t, assets)
	})

	t.Run("created row comes back", func(t *testing.T) {
		asset := &models.MediaAsset{
			ProfileID:  owner.ID,
			URL:        "https://cdn.example.com/1/abc.png",
			ObjectPath: "1/abc.png",
			Type:       models.MediaTypeImage,
			Caption:    "headshot.png",
		}
		require.NoError(t, repo.CreateMedia(asset))

		assets, err := repo.GetMedia(owner.ID)
		require.NoError(t, err)
		require.Len(t, assets, 1)
		assert.Equal(t, "https://cdn.example.com/1/abc.png", assets[0].URL)
		assert.Equal(t, models.MediaTypeImage, assets[0].Type)
		assert.Equal(t, "headshot.png", assets[0].Caption)
	})

	t.Run("object path is unique per upload", func(t *testing.T) {
		err := repo.CreateMedia(&models.MediaAsset{
			ProfileID:  owner.ID,
			URL:        "https://cdn.example.com/1/abc.png",
			ObjectPath: "1/abc.png",
			Type:       models.MediaTypeImage,
		})
		assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		assets, err := repo.GetMedia(owner.ID)
		require.NoError(t, err)
		require.Len(t, assets, 1)

		require.NoError(t, repo.DeleteMedia(assets[0].ID))

		_, err = repo.GetMediaByID(assets[0].ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
