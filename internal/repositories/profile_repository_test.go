package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProfileRepositoryGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	created := createProfile(t, db, "Mara Lindt", "mara@example.com", "actor")

	t.Run("existing id returns the row", func(t *testing.T) {
		got, err := repo.GetProfileByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mara Lindt", got.Name)
		assert.Equal(t, "actor", got.Role)
	})

	t.Run("missing id is an error, not a default profile", func(t *testing.T) {
		got, err := repo.GetProfileByID(99999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.Nil(t, got)
	})

	t.Run("lookup by email", func(t *testing.T) {
		got, err := repo.GetProfileByEmail("mara@example.com")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})
}

func TestProfileRepositoryDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	createProfile(t, db, "First", "same@example.com", "actor")
	second := createProfile(t, db, "Second", "other@example.com", "director")

	_, err := repo.UpdateProfile(second.ID, map[string]interface{}{"email": "same@example.com"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestProfileRepositoryPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	created := createProfile(t, db, "Jonas Reed", "jonas@example.com", "director")
	_, err := repo.UpdateProfile(created.ID, map[string]interface{}{
		"bio":      "Shorts and documentaries.",
		"location": "Lisbon",
	})
	require.NoError(t, err)

	got, err := repo.GetProfileByID(created.ID)
	require.NoError(t, err)

	// Patched fields reflect the update, everything else is untouched.
	assert.Equal(t, "Shorts and documentaries.", got.Bio)
	assert.Equal(t, "Lisbon", got.Location)
	assert.Equal(t, "Jonas Reed", got.Name)
	assert.Equal(t, "jonas@example.com", got.Email)
	assert.Equal(t, "director", got.Role)

	t.Run("empty patch is a no-op", func(t *testing.T) {
		again, err := repo.UpdateProfile(created.ID, map[string]interface{}{})
		require.NoError(t, err)
		assert.Equal(t, got.Bio, again.Bio)
	})

	t.Run("patching a missing profile fails", func(t *testing.T) {
		_, err := repo.UpdateProfile(99999, map[string]interface{}{"bio": "x"})
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestProfileRepositorySearch(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	createProfile(t, db, "Nico Vargas", "nico@example.com", "actor")
	createProfile(t, db, "Nicoletta Bram", "nicoletta@example.com", "director")

	all, err := repo.SearchProfiles("nico", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	directors, err := repo.SearchProfiles("nico", "director")
	require.NoError(t, err)
	require.Len(t, directors, 1)
	assert.Equal(t, "Nicoletta Bram", directors[0].Name)
}

func TestProfileRepositoryFollowCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresProfileRepository(db)

	p := createProfile(t, db, "Counted", "counted@example.com", "actor")

	require.NoError(t, repo.IncrementFollowersCount(p.ID))
	require.NoError(t, repo.IncrementFollowersCount(p.ID))
	require.NoError(t, repo.DecrementFollowersCount(p.ID))

	got, err := repo.GetProfileByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.FollowersCount)

	// Decrement never goes below zero.
	require.NoError(t, repo.DecrementFollowersCount(p.ID))
	require.NoError(t, repo.DecrementFollowersCount(p.ID))
	got, err = repo.GetProfileByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.FollowersCount)
}
