package repositories

import (
	"testing"

	"github.com/medetk/castlink/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFollowRepositorySymmetry(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	a := createProfile(t, db, "Asel", "asel@example.com", "actor")
	b := createProfile(t, db, "Boris", "boris@example.com", "director")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: a.ID, FollowingID: b.ID}))

	followers, err := repo.GetFollowers(b.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, a.ID, followers[0].ID)

	following, err := repo.GetFollowing(a.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, b.ID, following[0].ID)

	// The projection carries the summary fields and nothing else.
	assert.Equal(t, models.ProfileSummary{
		ID:   b.ID,
		Name: "Boris",
		Role: "director",
	}, following[0])

	isFollowing, err := repo.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, isFollowing)

	// The edge is directed: b does not follow a.
	reverse, err := repo.IsFollowing(b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, reverse)
}

func TestFollowRepositoryDuplicateEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	a := createProfile(t, db, "A", "a@example.com", "actor")
	b := createProfile(t, db, "B", "b@example.com", "actor")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: a.ID, FollowingID: b.ID}))

	// A second follow of the same ordered pair violates the unique index;
	// exactly one edge survives.
	err := repo.CreateFollow(&models.Follow{FollowerID: a.ID, FollowingID: b.ID})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	count, err := repo.GetFollowingCount(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// The opposite direction is a different pair and inserts cleanly.
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: b.ID, FollowingID: a.ID}))
}

func TestFollowRepositoryUnfollow(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	a := createProfile(t, db, "A", "a@example.com", "actor")
	b := createProfile(t, db, "B", "b@example.com", "actor")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: a.ID, FollowingID: b.ID}))
	require.NoError(t, repo.DeleteFollow(a.ID, b.ID))

	followers, err := repo.GetFollowers(b.ID)
	require.NoError(t, err)
	assert.Empty(t, followers)

	// Unfollowing a pair that has no edge is silently successful.
	assert.NoError(t, repo.DeleteFollow(a.ID, b.ID))
}

func TestFollowRepositoryCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)

	a := createProfile(t, db, "A", "a@example.com", "actor")
	b := createProfile(t, db, "B", "b@example.com", "actor")
	c := createProfile(t, db, "C", "c@example.com", "director")

	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: a.ID, FollowingID: c.ID}))
	require.NoError(t, repo.CreateFollow(&models.Follow{FollowerID: b.ID, FollowingID: c.ID}))

	followerCount, err := repo.GetFollowersCount(c.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), followerCount)

	followingCount, err := repo.GetFollowingCount(a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), followingCount)
}
