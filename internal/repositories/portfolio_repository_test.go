package repositories

import (
	"testing"

	"github.com/medetk/castlink/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresPortfolioRepository(db)

	owner := createProfile(t, db, "Owner", "owner@example.com", "actor")
	other := createProfile(t, db, "Other", "other@example.com", "director")

	t.Run("empty portfolio is an empty slice, not an error", func(t *testing.T) {
		items, err := repo.GetPortfolio(owner.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("added item appears exactly once", func(t *testing.T) {
		item := &models.PortfolioItem{
			ProfileID: owner.ID,
			Title:     "Night Shift",
			MediaType: models.MediaTypeVideo,
			Year:      2023,
		}
		require.NoError(t, repo.AddItem(item))

		items, err := repo.GetPortfolio(owner.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Night Shift", items[0].Title)
		assert.Equal(t, models.MediaTypeVideo, items[0].MediaType)
		assert.Equal(t, 2023, items[0].Year)
	})

	t.Run("listing is scoped to the owner", func(t *testing.T) {
		items, err := repo.GetPortfolio(other.ID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("items come back in insertion order", func(t *testing.T) {
		require.NoError(t, repo.AddItem(&models.PortfolioItem{ProfileID: owner.ID, Title: "Second", MediaType: models.MediaTypeImage}))
		require.NoError(t, repo.AddItem(&models.PortfolioItem{ProfileID: owner.ID, Title: "Third", MediaType: models.MediaTypeImage}))

		items, err := repo.GetPortfolio(owner.ID)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Night Shift", items[0].Title)
		assert.Equal(t, "Second", items[1].Title)
		assert.Equal(t, "Third", items[2].Title)
	})

	t.Run("delete removes the row", func(t *testing.T) {
		items, err := repo.GetPortfolio(owner.ID)
		require.NoError(t, err)
		require.NotEmpty(t, items)

		require.NoError(t, repo.DeleteItem(items[0].ID))

		remaining, err := repo.GetPortfolio(owner.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, len(items)-1)
	})
}
